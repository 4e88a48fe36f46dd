package entities

import "gopkg.in/yaml.v3"

// Message is the rendered output for one update: pull request title, pull
// request body, and commit message.
type Message struct {
	Title         string `yaml:"title"`
	Body          string `yaml:"body"`
	CommitMessage string `yaml:"commit_message"`
}

// MessageOptions configures how update messages are rendered.
type MessageOptions struct {
	Header        string        `yaml:"header,omitempty"`
	Footer        string        `yaml:"footer,omitempty"`
	Commit        CommitOptions `yaml:"commit,omitempty"`
	MaxBodyLength int           `yaml:"max_body_length,omitempty"`
}

// CommitOptions configures the trailer block of the commit message.
type CommitOptions struct {
	Trailers Trailers        `yaml:"trailers,omitempty"`
	Signoff  *SignoffDetails `yaml:"signoff,omitempty"`
}

// SignoffDetails identifies the author, and optionally the organization,
// signing off generated commits.
type SignoffDetails struct {
	Name     string `yaml:"name,omitempty"`
	Email    string `yaml:"email,omitempty"`
	OrgName  string `yaml:"org_name,omitempty"`
	OrgEmail string `yaml:"org_email,omitempty"`
}

// Trailer is one custom "Key: value" commit trailer. A nil value marks a
// trailer that was configured but left unset, and is skipped on render.
type Trailer struct {
	Key   string
	Value *string
}

// Trailers preserves the configured order of custom commit trailers.
type Trailers []Trailer

// UnmarshalYAML decodes a YAML mapping into an ordered trailer list.
func (t *Trailers) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return NewContractError("commit trailers must be a mapping")
	}
	trailers := make(Trailers, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		trailer := Trailer{Key: keyNode.Value}
		if valueNode.Tag != "!!null" {
			value := valueNode.Value
			trailer.Value = &value
		}
		trailers = append(trailers, trailer)
	}
	*t = trailers
	return nil
}

// PrefixPolicy is the resolved title prefix for one update.
type PrefixPolicy struct {
	Prefix              string
	CapitalizeFirstWord bool
}
