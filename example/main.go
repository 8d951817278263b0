// Package main demonstrates usage of the scg-support helpers.
package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/next-trace/scg-support/errorsx"
	"github.com/next-trace/scg-support/stringsx"
	"github.com/next-trace/scg-support/uuidx"
)

func main() {
	// Wrap a low-level failure with transport-facing metadata.
	cause := errors.New("row not found")
	err := errorsx.NewBuilder(cause).
		WithStatusCode(http.StatusNotFound).
		WithStatus("Not Found").
		WithReason("customer 42 not found").
		WithRequestID(uuidx.NewV4().String()).
		WithDetail("customer_id", "42").
		Build()
	fmt.Println(err)

	if code, ok := err.StatusCode(); ok {
		fmt.Println("status code:", code)
	}

	// Root error with call-site capture and layered context.
	enriched := errorsx.NewEnrichedBuilder("failed to process file").
		WithContext("processing user upload").
		WithSource(err).
		Build()
	fmt.Printf("%+v\n", enriched)

	// Small string helpers.
	fmt.Println(stringsx.ToUpperInitial("hello"))
	fmt.Println(stringsx.Coalesce("", "fallback", "unused"))
}
