package mimeguess_test

import (
	"fmt"

	"github.com/meigma/mimeguess"
	"github.com/meigma/mimeguess/lut"
)

func ExampleFromPath() {
	g := mimeguess.FromPath("/srv/www/index.html")
	fmt.Println(g.FirstOrOctetStream())

	g = mimeguess.FromPath("/srv/www/README")
	fmt.Println(g.FirstOrOctetStream())
	// Output:
	// text/html
	// application/octet-stream
}

func ExampleFromExt() {
	for mime := range mimeguess.FromExt("XML").All() {
		fmt.Println(mime)
	}
	// Output:
	// application/xml
	// text/xml
}

func ExampleExtensionsFor() {
	for ext := range mimeguess.ExtensionsFor("image/jpeg") {
		fmt.Println(ext)
	}
	// Output:
	// jpe
	// jpeg
	// jpg
}

func ExampleFromExtIn() {
	table, err := lut.Build([]lut.Record{
		{MediaType: "application/x-widget", Extensions: []string{"wdg"}},
		{MediaType: "text/plain", Extensions: []string{"txt", "wdg"}},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(mimeguess.FromExtIn(table, "WDG").Mimes())
	fmt.Println(mimeguess.FromExtIn(table, "html").FirstOrTextPlain())
	// Output:
	// [application/x-widget text/plain]
	// text/plain
}
