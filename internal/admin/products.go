package admin

import (
	"context"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/Areeb006/FAJR/internal/api"
	"github.com/Areeb006/FAJR/internal/domain"
	apperrors "github.com/Areeb006/FAJR/pkg/errors"
	"github.com/Areeb006/FAJR/pkg/validator"
)

// MaxImageBytes is the largest product image accepted for upload.
const MaxImageBytes = 5 << 20

// Image validation messages.
const (
	MsgImageTooLarge = "File size must be less than 5MB"
	MsgImageFormat   = "Please select a PNG, JPG, JPEG, GIF or WEBP image"
	MsgImageEmpty    = "No image file provided"
)

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}

// ValidateImage checks an image before it is uploaded.
func ValidateImage(img api.ImageFile) error {
	if len(img.Content) == 0 {
		return apperrors.InvalidInput(MsgImageEmpty)
	}
	if len(img.Content) > MaxImageBytes {
		return apperrors.InvalidInput(MsgImageTooLarge)
	}
	if !slices.Contains(imageExtensions, strings.ToLower(filepath.Ext(img.Name))) {
		return apperrors.InvalidInput(MsgImageFormat)
	}
	return nil
}

// ProductEditor is the add/edit product modal. An empty target means the
// next Save creates a product.
type ProductEditor struct {
	d *Dashboard

	mu     sync.Mutex
	target domain.ID
}

// NewProductEditor returns a product modal controller bound to d.
func (d *Dashboard) NewProductEditor() *ProductEditor {
	return &ProductEditor{d: d}
}

// OpenCreate prepares the modal for a new product.
func (e *ProductEditor) OpenCreate() {
	e.mu.Lock()
	e.target = ""
	e.mu.Unlock()
}

// OpenEdit loads the product to edit and targets it.
func (e *ProductEditor) OpenEdit(ctx context.Context, id domain.ID) (api.ProductForm, error) {
	p, err := e.d.backend.Product(ctx, id)
	if err != nil {
		return api.ProductForm{}, e.d.fail(ctx, "load product", err)
	}
	e.mu.Lock()
	e.target = id
	e.mu.Unlock()
	return api.ProductForm{
		Title:       p.Title,
		Category:    p.Category,
		Gender:      p.Gender,
		Price:       p.Price,
		Description: p.Description,
		Volume:      p.Volume,
		Longevity:   p.Longevity,
	}, nil
}

// Target returns the product being edited, or "" when creating.
func (e *ProductEditor) Target() domain.ID {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.target
}

// Close resets the modal.
func (e *ProductEditor) Close() { e.OpenCreate() }

// Save validates the form and creates or updates the product. On create the
// image travels with the form; on update it is uploaded afterwards and an
// upload failure does not fail the save. The product list is reloaded after
// a successful save.
func (e *ProductEditor) Save(ctx context.Context, form api.ProductForm, img *api.ImageFile) (domain.ID, error) {
	if err := validator.Check(form); err != nil {
		return "", e.d.fail(ctx, "validate product", err)
	}
	if img != nil {
		if err := ValidateImage(*img); err != nil {
			return "", e.d.fail(ctx, "validate image", err)
		}
	}

	id := e.Target()
	if id == "" {
		created, err := e.d.backend.CreateProduct(ctx, form, img)
		if err != nil {
			return "", e.d.fail(ctx, "create product", err)
		}
		id = created
		e.d.succeed(ctx, "Product added successfully!")
	} else {
		if err := e.d.backend.UpdateProduct(ctx, id, form); err != nil {
			return "", e.d.fail(ctx, "update product", err)
		}
		if img != nil {
			if _, err := e.d.backend.UploadProductImage(ctx, id, *img); err != nil {
				e.d.logger.WarnContext(ctx, "image upload after update failed",
					slog.String("product_id", id.String()),
					slog.String("error", err.Error()),
				)
			}
		}
		e.d.succeed(ctx, "Product updated successfully!")
	}

	e.d.logger.InfoContext(ctx, "product saved", slog.String("product_id", id.String()))
	e.Close()
	reload(ctx, e.d, e.d.Products, "products")
	return id, nil
}

// UploadImage replaces a product's image from the list screen.
func (d *Dashboard) UploadImage(ctx context.Context, id domain.ID, img api.ImageFile) (string, error) {
	if err := ValidateImage(img); err != nil {
		return "", d.fail(ctx, "validate image", err)
	}
	url, err := d.backend.UploadProductImage(ctx, id, img)
	if err != nil {
		return "", d.fail(ctx, "upload image", err)
	}
	d.succeed(ctx, "Image uploaded successfully!")
	reload(ctx, d, d.Products, "products")
	return url, nil
}

// DeleteProduct deletes a product and reloads the list.
func (d *Dashboard) DeleteProduct(ctx context.Context, id domain.ID) error {
	if err := d.backend.DeleteProduct(ctx, id); err != nil {
		return d.fail(ctx, "delete product", err)
	}
	d.succeed(ctx, "Product deleted successfully")
	reload(ctx, d, d.Products, "products")
	return nil
}
