package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind is the variant of a FileNode.
type Kind string

const (
	KindFolder Kind = "folder"
	KindFile   Kind = "file"
	KindImage  Kind = "image"
)

// ParseKind maps the wire value of "type" to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch k := Kind(s); k {
	case KindFolder, KindFile, KindImage:
		return k, true
	}
	return "", false
}

// HasContent reports whether nodes of this kind reference a blob.
func (k Kind) HasContent() bool {
	return k == KindFile || k == KindImage
}

// ParentRef points at the parent folder of a node. The zero value is Root,
// which is never a stored node and renders as 0 on the wire.
type ParentRef struct {
	id string
}

// Root is the top level of every owner's hierarchy.
var Root = ParentRef{}

// ParentID references an existing folder. "" and "0" both yield Root.
func ParentID(id string) ParentRef {
	if id == "0" {
		return Root
	}
	return ParentRef{id: id}
}

func (p ParentRef) IsRoot() bool { return p.id == "" }

// ID returns the parent's identifier, or "" for Root.
func (p ParentRef) ID() string { return p.id }

func (p ParentRef) String() string {
	if p.IsRoot() {
		return "0"
	}
	return p.id
}

func (p ParentRef) MarshalJSON() ([]byte, error) {
	if p.IsRoot() {
		return []byte("0"), nil
	}
	return json.Marshal(p.id)
}

func (p *ParentRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "null", "0":
		*p = Root
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("parentId must be 0 or an id string: %w", err)
	}
	*p = ParentID(s)
	return nil
}

// FileNode is a folder or content-bearing leaf in an owner's hierarchy.
// BlobRef is set iff Kind has content and is never rendered to clients.
type FileNode struct {
	ID       string    `json:"id"`
	OwnerID  string    `json:"userId"`
	Name     string    `json:"name"`
	Kind     Kind      `json:"type"`
	ParentID ParentRef `json:"parentId"`
	IsPublic bool      `json:"isPublic"`
	BlobRef  string    `json:"-"`
}
