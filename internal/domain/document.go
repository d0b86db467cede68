// Package domain provides core business models and interfaces for the OpenAPI codec.
package domain

// Field locations.
const (
	LocationQuery = "query"
	LocationPath  = "path"
	LocationForm  = "form"
	LocationBody  = "body"
)

// Request encodings the codec maps onto Swagger constructs.
const (
	EncodingJSON        = "application/json"
	EncodingMultipart   = "multipart/form-data"
	EncodingURLEncoded  = "application/x-www-form-urlencoded"
	EncodingOctetStream = "application/octet-stream"
)

// Document is the generic description of a hypermedia API.
type Document struct {
	URL     string
	Title   string
	Content []Entry // Top-level entries in insertion order
}

// Entry is a named node directly under a document.
type Entry struct {
	Key  string
	Node Node
}

// Node is a value stored under a document key. It is either a *Link or a *Group.
type Node interface {
	node()
}

// Link describes a single API operation.
type Link struct {
	URL         string
	Action      string
	Description string
	Encoding    string
	Fields      []Field
}

// Field describes one parameter of a link.
type Field struct {
	Name        string
	Required    bool
	Location    string // query, path, form, body or empty (inferred)
	Description string
}

// Group is a named set of links nested one level below the document.
type Group struct {
	Links []NamedLink
}

// NamedLink pairs a link with its key inside a group.
type NamedLink struct {
	Name string
	Link *Link
}

// LinkRef locates a link within a document.
type LinkRef struct {
	Group string // Empty for top-level links
	Name  string
	Link  *Link
}

func (*Link) node()  {}
func (*Group) node() {}

// Get returns the top-level node stored under key, or nil.
func (d *Document) Get(key string) Node {
	for _, e := range d.Content {
		if e.Key == key {
			return e.Node
		}
	}

	return nil
}

// Link walks keys from the document root and returns the link found there.
// A single key addresses a top-level link, two keys a grouped link.
func (d *Document) Link(keys ...string) *Link {
	if len(keys) == 0 || len(keys) > 2 {
		return nil
	}

	switch n := d.Get(keys[0]).(type) {
	case *Link:
		if len(keys) == 1 {
			return n
		}
	case *Group:
		if len(keys) == 2 {
			return n.Get(keys[1])
		}
	}

	return nil
}

// Group returns the group stored under key, or nil.
func (d *Document) Group(key string) *Group {
	g, _ := d.Get(key).(*Group)
	return g
}

// SetLink stores link under key at the top level. An existing entry with the
// same key is replaced in place.
func (d *Document) SetLink(key string, link *Link) {
	d.set(key, link)
}

// SetGroup stores group under key at the top level, replacing any existing entry.
func (d *Document) SetGroup(key string, group *Group) {
	d.set(key, group)
}

// SetGroupLink stores link under name inside the group keyed by group,
// creating the group when needed. A top-level link under the group key is
// replaced by the group.
func (d *Document) SetGroupLink(group, name string, link *Link) {
	g := d.Group(group)
	if g == nil {
		g = &Group{}
		d.set(group, g)
	}

	g.Set(name, link)
}

func (d *Document) set(key string, n Node) {
	for i := range d.Content {
		if d.Content[i].Key == key {
			d.Content[i].Node = n
			return
		}
	}

	d.Content = append(d.Content, Entry{Key: key, Node: n})
}

// Links flattens the document: top-level links first, then the links of
// each group, both in insertion order.
func (d *Document) Links() []LinkRef {
	var top, grouped []LinkRef

	for _, e := range d.Content {
		switch n := e.Node.(type) {
		case *Link:
			top = append(top, LinkRef{Name: e.Key, Link: n})
		case *Group:
			for _, nl := range n.Links {
				grouped = append(grouped, LinkRef{Group: e.Key, Name: nl.Name, Link: nl.Link})
			}
		}
	}

	return append(top, grouped...)
}

// Get returns the link stored under name, or nil.
func (g *Group) Get(name string) *Link {
	for _, nl := range g.Links {
		if nl.Name == name {
			return nl.Link
		}
	}

	return nil
}

// Set stores link under name, replacing an existing link with the same name.
func (g *Group) Set(name string, link *Link) {
	for i := range g.Links {
		if g.Links[i].Name == name {
			g.Links[i].Link = link
			return
		}
	}

	g.Links = append(g.Links, NamedLink{Name: name, Link: link})
}
