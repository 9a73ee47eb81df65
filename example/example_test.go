package example_test

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/viant/cloudbridge"
	"github.com/viant/cloudbridge/bridge"
	"github.com/viant/cloudbridge/schema"
	"github.com/viant/cloudbridge/server"
)

func Example_customModule() {
	ctx := context.Background()
	module, err := bridge.New("Calculator", []bridge.Registration{
		{Name: "add", Handler: bridge.HandlerFunc(func(ctx context.Context, args []any) (any, error) {
			sum := 0.0
			for _, arg := range args {
				value, ok := arg.(float64)
				if !ok {
					return nil, errors.New("expected number")
				}
				sum += value
			}
			return sum, nil
		})},
	})
	if err != nil {
		log.Fatal(err)
	}
	srv, err := server.New(module)
	if err != nil {
		log.Fatal(err)
	}
	client := srv.AsClient(ctx, nil)
	result, err := client.Invoke(ctx, "add", 1, 2)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(result))
	// Output: 3
}

func Example_cloudStore() {
	ctx := context.Background()
	dir, err := os.MkdirTemp("", "cloudbridge")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	srv, err := cloudbridge.NewService(ctx, &cloudbridge.Config{ContainerURL: "file://" + dir}, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer srv.Close()
	client := srv.Client(ctx, nil)
	if _, err = client.Invoke(ctx, schema.MethodWriteFile, "/hello.txt", "Hello, world!"); err != nil {
		log.Fatal(err)
	}
	result, err := client.Invoke(ctx, schema.MethodReadFile, "/hello.txt")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(result))
	// Output: "Hello, world!"
}
