package wizard

import (
	"errors"

	"github.com/charmbracelet/huh"
)

const (
	defaultDriver     = "hetznercloud"
	defaultServerType = "cx22"
	defaultImage      = "debian-12"
	defaultLocation   = "fsn1"
)

var errInvalidName = errors.New("must be 1-32 lowercase alphanumeric characters or hyphens")

// serverTypes is a curated subset of Hetzner Cloud offerings; the full list
// is accepted via the scenario file.
var serverTypes = []struct{ name, description string }{
	{"cx22", "2 vCPU, 4 GB (shared x86)"},
	{"cx32", "4 vCPU, 8 GB (shared x86)"},
	{"cpx11", "2 vCPU, 2 GB (shared AMD)"},
	{"cax11", "2 vCPU, 4 GB (shared ARM)"},
	{"ccx13", "2 vCPU, 8 GB (dedicated x86)"},
}

var images = []string{
	"debian-12",
	"ubuntu-24.04",
	"fedora-40",
	"rocky-9",
}

var locations = []struct{ name, description string }{
	{"fsn1", "Falkenstein, Germany"},
	{"nbg1", "Nuremberg, Germany"},
	{"hel1", "Helsinki, Finland"},
	{"ash", "Ashburn, USA"},
	{"hil", "Hillsboro, USA"},
}

// ServerTypeOptions returns huh select options for server types.
func ServerTypeOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(serverTypes))
	for _, t := range serverTypes {
		opts = append(opts, huh.NewOption(t.name+" ("+t.description+")", t.name))
	}
	return opts
}

// ImageOptions returns huh select options for OS images.
func ImageOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(images))
	for _, img := range images {
		opts = append(opts, huh.NewOption(img, img))
	}
	return opts
}

// LocationOptions returns huh select options for datacenter locations.
func LocationOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(locations))
	for _, l := range locations {
		opts = append(opts, huh.NewOption(l.name+" ("+l.description+")", l.name))
	}
	return opts
}
