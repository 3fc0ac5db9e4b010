package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/uicontract/go-overlay-check/fixture"
)

func main() {
	addrPtr := flag.String("addr", ":3000", "listen address")
	instancesPtr := flag.Int("instances", 1, "overlay marker elements to render")
	marginPtr := flag.String("margin", "-1rem", "margin-bottom on the overlay parent")
	displayPtr := flag.String("display", "flex", "display on the overlay parent")

	flag.Parse()

	log.Printf("fixture listening on %s", *addrPtr)
	log.Fatal(http.ListenAndServe(*addrPtr, fixture.Router(fixture.Config{
		Instances:     *instancesPtr,
		ParentMargin:  *marginPtr,
		ParentDisplay: *displayPtr,
	})))
}
