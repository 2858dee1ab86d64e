package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"sitesnap/internal/app"
	"sitesnap/internal/domain/entity"
	"sitesnap/internal/usecase"
)

// productFlags are shared by products add and products update.
type productFlags struct {
	id             string
	categoryID     string
	name           string
	price          float64
	description    string
	inventory      string
	visible        int
	images         listFlag
	videos         listFlag
	specifications listFlag
	attributeIDs   listFlag
	attributes     attrFlag
}

func (p *productFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&p.id, "id", "", "Product ID")
	fs.StringVar(&p.categoryID, "category", "", "Category ID")
	fs.StringVar(&p.name, "name", "", "Product name")
	fs.Float64Var(&p.price, "price", 0, "Price")
	fs.StringVar(&p.description, "description", "", "Description")
	fs.StringVar(&p.inventory, "inventory", "", "none, in stock or out of stock")
	fs.IntVar(&p.visible, "visible", 1, "1 to list on the storefront, 0 to hide")
	fs.Var(&p.images, "image", "Image URL (repeatable)")
	fs.Var(&p.videos, "video", "Video URL (repeatable)")
	fs.Var(&p.specifications, "spec", "Specification line (repeatable)")
	fs.Var(&p.attributeIDs, "attribute-id", "Existing attribute ID (repeatable)")
	fs.Var(&p.attributes, "attr", "Attribute as Name=value1|value2 (repeatable)")
}

func (p *productFlags) input() usecase.ProductInput {
	visible := p.visible

	return usecase.ProductInput{
		CategoryID:     p.categoryID,
		Name:           p.name,
		Price:          p.price,
		Description:    p.description,
		Images:         p.images,
		Videos:         p.videos,
		Inventory:      entity.Inventory(p.inventory),
		Specifications: p.specifications,
		Attributes:     p.attributes,
		AttributeIDs:   p.attributeIDs,
		Visible:        &visible,
	}
}

// update copies only the flags given on the command line.
func (p *productFlags) update(set map[string]bool) entity.ProductUpdate {
	var u entity.ProductUpdate
	if set["category"] {
		u.CategoryID = &p.categoryID
	}
	if set["name"] {
		u.Name = &p.name
	}
	if set["price"] {
		u.Price = &p.price
	}
	if set["description"] {
		u.Description = &p.description
	}
	if set["inventory"] {
		inv := entity.Inventory(p.inventory)
		u.Inventory = &inv
	}
	if set["visible"] {
		u.Visible = &p.visible
	}
	if set["image"] {
		images := []string(p.images)
		u.Images = &images
	}
	if set["video"] {
		videos := []string(p.videos)
		u.Videos = &videos
	}
	if set["spec"] {
		specs := []string(p.specifications)
		u.Specifications = &specs
	}
	if set["attribute-id"] {
		ids := []string(p.attributeIDs)
		u.AttributeIDs = &ids
	}
	if set["attr"] {
		attrs := []entity.ProductAttribute(p.attributes)
		u.Attributes = &attrs
	}

	return u
}

func runProducts(ctx context.Context, a *app.App, args []string, out io.Writer) error {
	action, args, err := requireAction("products", args, "list", "show", "add", "update", "delete")
	if err != nil {
		return err
	}

	fs := newFlags("products " + action)
	var p productFlags
	p.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch action {
	case "show":
		id, err := requireID(fs, p.id)
		if err != nil {
			return err
		}

		detail, err := a.Catalog.GetProductDetail(ctx, id)
		if err != nil {
			return err
		}

		return printJSON(out, detail)
	case "add":
		product, err := a.Catalog.AddProduct(ctx, p.input())
		if err != nil {
			return err
		}

		return printJSON(out, product)
	case "update":
		id, err := requireID(fs, p.id)
		if err != nil {
			return err
		}

		product, err := a.Catalog.UpdateProduct(ctx, id, p.update(setFlags(fs)))
		if err != nil {
			return err
		}

		return printJSON(out, product)
	case "delete":
		id, err := requireID(fs, p.id)
		if err != nil {
			return err
		}
		if err := a.Catalog.DeleteProduct(ctx, id); err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "Deleted product %s.\n", id)

		return err
	default:
		products, err := a.Catalog.GetProducts(ctx)
		if err != nil {
			return err
		}

		return printJSON(out, products)
	}
}
