package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/entity"
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type assetAttribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

type asset struct {
	ID                 uint64           `json:"id"`
	Owner              string           `json:"owner"`
	Creator            string           `json:"creator"`
	CreatorExplorerURL string           `json:"creatorExplorerUrl"`
	ContentLocator     string           `json:"contentLocator"`
	Name               string           `json:"name"`
	Description        string           `json:"description"`
	Image              string           `json:"image"`
	Attributes         []assetAttribute `json:"attributes"`
	MetadataAvailable  bool             `json:"metadataAvailable"`
}

type getAssetsResult struct {
	List []asset `json:"list"`
}

type getAssetsResponse = HttpResponse[getAssetsResult]

// GetAssets returns the full catalog view in ledger order.
func (h *HttpHandler) GetAssets(ctx *fiber.Ctx) (err error) {
	items, err := h.usecase.GetCatalog(ctx.UserContext())
	if err != nil {
		return errors.Wrap(err, "error during GetCatalog")
	}

	list := lo.Map(items, func(item usecase.CatalogItem, _ int) asset {
		return asset{
			ID:                 item.Asset.ID,
			Owner:              item.Asset.Owner.Hex(),
			Creator:            item.Asset.Creator.Hex(),
			CreatorExplorerURL: h.network.ExplorerAddressURL(item.Asset.Creator.Hex()),
			ContentLocator:     item.Asset.ContentLocator,
			Name:               item.Descriptor.Name,
			Description:        item.Descriptor.Description,
			Image:              item.Descriptor.Image,
			Attributes: lo.Map(item.Descriptor.Attributes, func(attr entity.Attribute, _ int) assetAttribute {
				return assetAttribute(attr)
			}),
			MetadataAvailable: item.Resolved,
		}
	})

	resp := getAssetsResponse{
		Result: &getAssetsResult{List: list},
	}
	return errors.WithStack(ctx.JSON(resp))
}
