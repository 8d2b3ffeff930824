package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Areeb006/FAJR/internal/domain"
	apperrors "github.com/Areeb006/FAJR/pkg/errors"
)

// ProductForm is the editable part of a product, sent as multipart form
// fields.
type ProductForm struct {
	Title       string  `json:"title" validate:"required"`
	Category    string  `json:"category"`
	Gender      string  `json:"gender" validate:"required"`
	Price       float64 `json:"price" validate:"gt=0"`
	Description string  `json:"description" validate:"required"`
	Volume      string  `json:"volume"`
	Longevity   string  `json:"longevity"`
}

// ImageFile is an image to upload under the "image" form field.
type ImageFile struct {
	Name    string
	Content []byte
}

// Products fetches the catalogue.
func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var out struct {
		Products []domain.Product `json:"products"`
	}
	if err := c.getJSON(ctx, "/api/products", "/api/products", &out); err != nil {
		return nil, err
	}
	return nonNil(out.Products), nil
}

// Product fetches one product.
func (c *Client) Product(ctx context.Context, id domain.ID) (domain.Product, error) {
	var out struct {
		Product domain.Product `json:"product"`
	}
	err := c.getJSON(ctx, "/api/products/{id}", "/api/products/"+escape(id), &out)
	return out.Product, err
}

// RelatedProducts fetches the products shown under a product's detail.
func (c *Client) RelatedProducts(ctx context.Context, id domain.ID) ([]domain.Product, error) {
	var out struct {
		RelatedProducts []domain.Product `json:"related_products"`
	}
	if err := c.getJSON(ctx, "/api/products/{id}/related", "/api/products/"+escape(id)+"/related", &out); err != nil {
		return nil, err
	}
	return nonNil(out.RelatedProducts), nil
}

// CreateProduct creates a product, with its image in the same request when
// img is not nil.
func (c *Client) CreateProduct(ctx context.Context, form ProductForm, img *ImageFile) (domain.ID, error) {
	body, contentType, err := productMultipart(form, img)
	if err != nil {
		return "", err
	}
	var out struct {
		ProductID domain.ID `json:"product_id"`
	}
	err = c.do(ctx, call{
		method:      http.MethodPost,
		route:       "/api/admin/products",
		path:        "/api/admin/products",
		body:        body,
		contentType: contentType,
	}, &out)
	return out.ProductID, err
}

// UpdateProduct replaces a product's fields. Images are uploaded separately.
func (c *Client) UpdateProduct(ctx context.Context, id domain.ID, form ProductForm) error {
	body, contentType, err := productMultipart(form, nil)
	if err != nil {
		return err
	}
	return c.do(ctx, call{
		method:      http.MethodPut,
		route:       "/api/admin/products/{id}",
		path:        "/api/admin/products/" + escape(id),
		body:        body,
		contentType: contentType,
	}, nil)
}

// DeleteProduct deletes a product.
func (c *Client) DeleteProduct(ctx context.Context, id domain.ID) error {
	return c.do(ctx, call{
		method: http.MethodDelete,
		route:  "/api/admin/products/{id}",
		path:   "/api/admin/products/" + escape(id),
	}, nil)
}

// UploadProductImage replaces a product's image and returns its new URL.
func (c *Client) UploadProductImage(ctx context.Context, id domain.ID, img ImageFile) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := writeImage(mw, img); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", apperrors.Internal(fmt.Errorf("encode form: %w", err))
	}

	var out struct {
		ImageURL string `json:"image_url"`
	}
	err := c.do(ctx, call{
		method:      http.MethodPost,
		route:       "/api/admin/upload-product-image/{id}",
		path:        "/api/admin/upload-product-image/" + escape(id),
		body:        buf.Bytes(),
		contentType: mw.FormDataContentType(),
	}, &out)
	return out.ImageURL, err
}

func productMultipart(form ProductForm, img *ImageFile) ([]byte, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := []struct{ name, value string }{
		{"title", form.Title},
		{"category", form.Category},
		{"gender", form.Gender},
		{"price", strconv.FormatFloat(form.Price, 'f', -1, 64)},
		{"description", form.Description},
		{"volume", form.Volume},
		{"longevity", form.Longevity},
	}
	for _, f := range fields {
		if err := mw.WriteField(f.name, f.value); err != nil {
			return nil, "", apperrors.Internal(fmt.Errorf("encode form: %w", err))
		}
	}
	if img != nil {
		if err := writeImage(mw, *img); err != nil {
			return nil, "", err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, "", apperrors.Internal(fmt.Errorf("encode form: %w", err))
	}
	return buf.Bytes(), mw.FormDataContentType(), nil
}

func writeImage(mw *multipart.Writer, img ImageFile) error {
	part, err := mw.CreateFormFile("image", img.Name)
	if err != nil {
		return apperrors.Internal(fmt.Errorf("encode form: %w", err))
	}
	if _, err := part.Write(img.Content); err != nil {
		return apperrors.Internal(fmt.Errorf("encode form: %w", err))
	}
	return nil
}

func escape(id domain.ID) string {
	return url.PathEscape(id.String())
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
