package buffer_test

import (
	"fmt"

	"github.com/cwbudde/algo-record/record/buffer"
	"github.com/cwbudde/algo-record/record/signal"
)

func ExampleRecorder_TickAndRecord() {
	x := signal.NewVariable("robot", "x")
	r, err := buffer.New(5)
	if err != nil {
		panic(err)
	}
	if _, err := r.AddSignal(x); err != nil {
		panic(err)
	}

	for i := 1; i <= 7; i++ {
		x.SetValue(float64(i))
		r.TickAndRecord()
	}
	fmt.Println(r.InPoint(), r.OutPoint(), r.FindEntry("robot.x").Data())

	r.Pack()
	fmt.Println(r.InPoint(), r.OutPoint(), r.FindEntry("x").Data())

	// Output:
	// 2 1 [6 7 3 4 5]
	// 0 4 [3 4 5 6 7]
}

func ExampleRecorder_Crop() {
	x := signal.NewVariable("", "x")
	r, err := buffer.New(8)
	if err != nil {
		panic(err)
	}
	if _, err := r.AddSignal(x); err != nil {
		panic(err)
	}
	for i := 0; i < 8; i++ {
		x.SetValue(float64(i * 10))
		r.TickAndRecord()
	}

	r.Crop(6, 1)
	fmt.Println(r.Size(), r.Entry(x).Data(), x.Value())

	// Output:
	// 4 [60 70 0 10] 60
}
