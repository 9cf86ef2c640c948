package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target: "gen/ent",
			// Package must be the full import path; a bare name makes the
			// generated files import themselves as "ent/...".
			Package: "github.com/flyerscan/offers-tracker/gen/ent",
			Schema:  "github.com/flyerscan/offers-tracker/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}