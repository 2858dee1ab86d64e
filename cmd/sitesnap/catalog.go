package main

import (
	"context"
	"fmt"
	"io"

	"sitesnap/internal/app"
	"sitesnap/internal/domain/entity"
	"sitesnap/internal/usecase"
)

func runSeller(ctx context.Context, a *app.App, args []string, out io.Writer) error {
	action, args, err := requireAction("seller", args, "show", "update")
	if err != nil {
		return err
	}

	if action == "show" {
		seller, err := a.Catalog.GetSeller(ctx)
		if err != nil {
			return err
		}

		return printJSON(out, seller)
	}

	fs := newFlags("seller update")
	name := fs.String("name", "", "Seller name")
	phone := fs.String("phone", "", "Contact phone")
	address := fs.String("address", "", "Work address")
	businessName := fs.String("business-name", "", "Business name")
	businessType := fs.String("business-type", "", "Business type")
	var templates listFlag
	fs.Var(&templates, "template", "Selected template ID (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	set := setFlags(fs)
	var updates entity.SellerUpdate
	if set["name"] {
		updates.Name = name
	}
	if set["phone"] {
		updates.Phone = phone
	}
	if set["address"] {
		updates.WorkAddress = address
	}
	if set["business-name"] {
		updates.BusinessName = businessName
	}
	if set["business-type"] {
		updates.BusinessType = businessType
	}
	if set["template"] {
		updates.SelectedTemplateIDs = templates
	}

	seller, err := a.Catalog.UpdateSeller(ctx, updates)
	if err != nil {
		return err
	}

	return printJSON(out, seller)
}

func runTemplates(ctx context.Context, a *app.App, args []string, out io.Writer) error {
	action, args, err := requireAction("templates", args, "list", "select")
	if err != nil {
		return err
	}

	if action == "select" {
		fs := newFlags("templates select")
		var ids listFlag
		fs.Var(&ids, "id", "Template ID (repeatable)")
		if err := fs.Parse(args); err != nil {
			return err
		}

		if err := a.Catalog.LinkTemplatesToSeller(ctx, ids); err != nil {
			return err
		}
	}

	templates, err := a.Catalog.GetTemplates(ctx)
	if err != nil {
		return err
	}
	selected, err := a.Catalog.GetSelectedTemplates(ctx)
	if err != nil {
		return err
	}

	return printJSON(out, struct {
		Templates []entity.Template `json:"templates"`
		Selected  []string          `json:"selected"`
	}{templates, selected})
}

func runCategories(ctx context.Context, a *app.App, args []string, out io.Writer) error {
	action, args, err := requireAction("categories", args, "list", "add", "update", "delete")
	if err != nil {
		return err
	}

	fs := newFlags("categories " + action)
	id := fs.String("id", "", "Category ID")
	name := fs.String("name", "", "Category name")
	description := fs.String("description", "", "Category description")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch action {
	case "add":
		category, err := a.Catalog.AddCategory(ctx, usecase.CategoryInput{Name: *name, Description: *description})
		if err != nil {
			return err
		}

		return printJSON(out, category)
	case "update":
		categoryID, err := requireID(fs, *id)
		if err != nil {
			return err
		}

		set := setFlags(fs)
		var updates usecase.CategoryUpdate
		if set["name"] {
			updates.Name = name
		}
		if set["description"] {
			updates.Description = description
		}

		category, err := a.Catalog.UpdateCategory(ctx, categoryID, updates)
		if err != nil {
			return err
		}

		return printJSON(out, category)
	case "delete":
		categoryID, err := requireID(fs, *id)
		if err != nil {
			return err
		}
		if err := a.Catalog.DeleteCategory(ctx, categoryID); err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "Deleted category %s.\n", categoryID)

		return err
	default:
		categories, err := a.Catalog.GetCategories(ctx)
		if err != nil {
			return err
		}

		return printJSON(out, categories)
	}
}

func runAttributes(ctx context.Context, a *app.App, args []string, out io.Writer) error {
	action, args, err := requireAction("attributes", args, "list", "add", "update", "delete")
	if err != nil {
		return err
	}

	fs := newFlags("attributes " + action)
	id := fs.String("id", "", "Attribute ID")
	name := fs.String("name", "", "Attribute name")
	var options listFlag
	fs.Var(&options, "option", "Attribute option (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch action {
	case "add":
		attribute, err := a.Catalog.AddAttribute(ctx, usecase.AttributeInput{Name: *name, Options: options})
		if err != nil {
			return err
		}

		return printJSON(out, attribute)
	case "update":
		attributeID, err := requireID(fs, *id)
		if err != nil {
			return err
		}

		set := setFlags(fs)
		var updates usecase.AttributeUpdate
		if set["name"] {
			updates.Name = name
		}
		if set["option"] {
			opts := []string(options)
			updates.Options = &opts
		}

		attribute, err := a.Catalog.UpdateAttribute(ctx, attributeID, updates)
		if err != nil {
			return err
		}

		return printJSON(out, attribute)
	case "delete":
		attributeID, err := requireID(fs, *id)
		if err != nil {
			return err
		}
		if err := a.Catalog.DeleteAttribute(ctx, attributeID); err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "Deleted attribute %s.\n", attributeID)

		return err
	default:
		attributes, err := a.Catalog.GetAttributes(ctx)
		if err != nil {
			return err
		}

		return printJSON(out, attributes)
	}
}
