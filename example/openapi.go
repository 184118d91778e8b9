package main

import (
	"github.com/getkin/kin-openapi/openapi3"

	"example.com/serenumexample/job"
)

// enumSchema returns a string schema allowing only the given texts.
func enumSchema(texts []string) *openapi3.Schema {
	values := make([]any, len(texts))
	for i, text := range texts {
		values[i] = text
	}
	return openapi3.NewStringSchema().WithEnum(values...)
}

// newSpec describes the API. The enums in the schemas are listed by the
// generated text functions so that they never drift from the Go code.
func newSpec() *openapi3.T {
	jobSchema := openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewIntegerSchema()).
		WithProperty("title", openapi3.NewStringSchema()).
		WithProperty("status", enumSchema(job.StatusTexts())).
		WithProperty("priority", enumSchema(job.PriorityTexts()))

	spec := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   "Jobs",
			Version: "1.0.0",
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				"Job": openapi3.NewSchemaRef("", jobSchema),
			},
		},
	}
	return spec
}
