// Command example shows both faces of the library: statically typed
// lenses over domain structs, and dynamic path lenses over documents
// decoded from JSON and YAML.
package main

import (
	"fmt"

	"github.com/authcorp/optics/dynpath"
	"github.com/authcorp/optics/lens"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

type Address struct {
	City string
	Zip  string
}

type User struct {
	ID      uuid.UUID
	Name    string
	Address Address
}

var (
	addressLens = lens.Field(
		func(u User) Address { return u.Address },
		func(u User, a Address) User { u.Address = a; return u },
	)
	cityLens = lens.Field(
		func(a Address) string { return a.City },
		func(a Address, c string) Address { a.City = c; return a },
	)
	userCity = lens.Compose(addressLens, cityLens)
)

func main() {
	alice := User{
		ID:      uuid.New(),
		Name:    "Alice",
		Address: Address{City: "NYC", Zip: "10001"},
	}

	moved := userCity.Set(alice, "LA")
	fmt.Printf("%s moved from %s to %s\n", alice.Name, userCity.Get(alice), userCity.Get(moved))

	nameLength := lens.MapLens(
		lens.Field(
			func(u User) string { return u.Name },
			func(u User, n string) User { u.Name = n; return u },
		),
		func(n string) int { return len(n) },
	)
	fmt.Printf("name length: %d\n", nameLength.Get(alice))

	dynamicJSON()
	dynamicYAML()
}

func dynamicJSON() {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary

	raw := `{"user": {"name": "Alice", "roles": ["admin", "ops"]}}`
	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		panic(err)
	}

	role := dynpath.Of("user", "roles", 1)
	updated := role.Set(doc, "dev")

	out, err := json.Marshal(updated)
	if err != nil {
		panic(err)
	}
	fmt.Printf("json after update: %s\n", out)
}

func dynamicYAML() {
	raw := `
server:
  host: localhost
  ports: [8080, 9090]
`
	var doc map[string]any
	if err := yaml.Unmarshal([]byte(raw), &doc); err != nil {
		panic(err)
	}

	port := dynpath.Of("server", "ports", 0)
	var source any = doc
	updated := port.Set(source, 8443)

	out, err := yaml.Marshal(updated)
	if err != nil {
		panic(err)
	}
	fmt.Printf("yaml after update:\n%s", out)
}
