package sigslot_test

import (
	"context"
	"fmt"

	"github.com/mvantonder/sigslot"
)

func ExampleSignal() {
	booted := sigslot.NewSync[int]()

	booted.Connect(func(ctx context.Context, id int) error {
		fmt.Println("vm", id, "is up")
		return nil
	})
	booted.Connect(func(ctx context.Context, id int) error {
		fmt.Println("registering vm", id)
		return nil
	})

	_ = booted.Emit(context.Background(), 4)

	// Output:
	// vm 4 is up
	// registering vm 4
}

func ExampleConnection_Disconnect() {
	s := sigslot.NewSync[string]()

	conn := s.Connect(func(ctx context.Context, msg string) error {
		fmt.Println("got:", msg)
		return nil
	})

	_ = s.Emit(context.Background(), "hello")
	conn.Disconnect()
	_ = s.Emit(context.Background(), "world")

	// Output:
	// got: hello
}
