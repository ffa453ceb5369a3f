package entity

import "fmt"

const (
	PlaceholderDescription = "Metadata unavailable"
	PlaceholderImage       = "/placeholder-nft.png"
)

// ContentDescriptor is the immutable metadata document stored once per asset
// in the content store, following the common NFT metadata document shape.
type ContentDescriptor struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Attributes  []Attribute `json:"attributes"`
}

type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// PlaceholderDescriptor is substituted for a single asset whose descriptor
// cannot be resolved, so one bad locator degrades that item and not the view.
func PlaceholderDescriptor(assetID uint64) ContentDescriptor {
	return ContentDescriptor{
		Name:        fmt.Sprintf("Asset #%d", assetID),
		Description: PlaceholderDescription,
		Image:       PlaceholderImage,
	}
}
