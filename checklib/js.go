package checklib

import (
	_ "embed"
)

var (
	// parentStyleJS is a javascript snippet that resolves the computed
	// margin-bottom and display of the node's immediate layout parent,
	// or returns an empty object when the node has no parent (detached
	// from the document).
	//go:embed js/parent_style.js
	parentStyleJS string
)
