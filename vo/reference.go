package vo

// Reference is a single link-like attribute occurrence found in a document.
type Reference struct {
	Tag  string `json:"tag"`
	Attr string `json:"attr"`
	URL  string `json:"url"`
	Line int    `json:"line"`
}

// Category tells how a reference target has to be resolved.
type Category int

const (
	CategoryFragment Category = iota
	CategorySpecialProtocol
	CategoryExternal
	CategoryLocal
)

func (c Category) String() string {
	switch c {
	case CategoryFragment:
		return "fragment"
	case CategorySpecialProtocol:
		return "special-protocol"
	case CategoryExternal:
		return "external"
	case CategoryLocal:
		return "local"
	}
	return "unknown"
}
