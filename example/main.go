// File: typedstore/example/main.go
package main

import (
	"fmt"
	"log"
	"time"

	"typedstore"
)

func main() {
	storage, err := typedstore.NewFileStorage("./data")
	if err != nil {
		log.Fatal(err)
	}

	settings, err := typedstore.New("settings", typedstore.Options{
		Type: typedstore.Dict(map[string]typedstore.Type{
			"host":  typedstore.String().MinLength(1).Default("localhost"),
			"port":  typedstore.Number().Integer().Min(1).Max(65535).Default(8080),
			"debug": typedstore.Bool(),
			"tags":  typedstore.List(typedstore.String()),
		}),
		Storage: storage,
		Delay:   100 * time.Millisecond,
		OnConflict: func(stored, lastKnown string) {
			fmt.Println("external writer changed the settings entry")
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := settings.Set("port", 9090); err != nil {
		log.Fatal(err)
	}
	if err := settings.Update("debug", func(prev any) any {
		on, _ := prev.(bool)
		return !on
	}); err != nil {
		log.Fatal(err)
	}

	// Force the debounced write before exiting.
	if err := settings.Flush(); err != nil {
		log.Fatal(err)
	}

	host, _ := settings.String("host")
	port, _ := settings.Int64("port")
	fmt.Printf("listening on %s:%d\n", host, port)

	fmt.Print(settings.Debug())
}
