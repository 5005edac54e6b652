package result_test

import (
	"fmt"

	"github.com/drblury/pulsecheck/result"
)

func ExampleNew() {
	check := result.New("database")

	up := check.Up()
	down := check.Down(result.Message("timeout of 50ms exceeded"))

	fmt.Println(up.Details()["status"])
	fmt.Println(down.Details()["message"])
	// Output:
	// up
	// timeout of 50ms exceeded
}

func ExampleStatus_JSON() {
	status := result.New("database").Down(result.Message("connection refused"))

	data, _ := status.JSON()
	fmt.Println(string(data))
	// Output:
	// {"database":{"message":"connection refused","status":"down"}}
}
