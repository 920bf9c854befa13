package serializer_test

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"schema-serializer/fields"
	"schema-serializer/serializer"
	"schema-serializer/validators"
)

func Example() {
	type Book struct {
		Title  string
		Pages  int
		Author struct{ Name string }
	}

	author := serializer.MustDeclare("Author", serializer.Field("name", fields.Char()))
	book := serializer.MustDeclare("Book",
		serializer.Field("title", fields.Char(fields.WithValidators(validators.Required()))),
		serializer.Field("pages", fields.Integer(fields.WithValidators(validators.MinValue(1)))),
		serializer.Nested("author", author),
	)

	b := Book{Title: "Dune", Pages: 412}
	b.Author.Name = "Frank Herbert"

	in, _ := book.Bind(b)
	data, _ := in.Data()
	raw, _ := data.(*orderedmap.OrderedMap[string, any]).MarshalJSON()
	fmt.Println(string(raw))

	in, _ = book.BindData(map[string]any{"pages": "0"})
	fmt.Println(in.Errors())

	// Output:
	// {"title":"Dune","pages":412,"author":{"name":"Frank Herbert"}}
	// title: Value is required.; pages: Ensure this value is greater than or equal to 1.
}
