package services

import (
	"sort"
)

// Descriptor is the immutable metadata attached to a registered service.
// Its fields are unexported; accessors return copies so a Descriptor can be
// shared freely once built.
type Descriptor struct {
	name        string
	displayName string
	description string
	version     string
	tags        map[string]struct{}
}

// NewDescriptor builds a Descriptor. An empty displayName defaults to name.
func NewDescriptor(name, displayName, description, version string, tags ...string) Descriptor {
	if displayName == "" {
		displayName = name
	}
	tagSet := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		tagSet[tag] = struct{}{}
	}
	return Descriptor{
		name:        name,
		displayName: displayName,
		description: description,
		version:     version,
		tags:        tagSet,
	}
}

// Name returns the service name.
func (d Descriptor) Name() string { return d.name }

// DisplayName returns the human-readable name.
func (d Descriptor) DisplayName() string { return d.displayName }

// Description returns the service description.
func (d Descriptor) Description() string { return d.description }

// Version returns the service version.
func (d Descriptor) Version() string { return d.version }

// HasTag reports whether the descriptor carries tag.
func (d Descriptor) HasTag(tag string) bool {
	_, ok := d.tags[tag]
	return ok
}

// Tags returns the tags in lexical order.
func (d Descriptor) Tags() []string {
	tags := make([]string, 0, len(d.tags))
	for tag := range d.tags {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
