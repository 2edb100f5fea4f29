package controllers

import (
	"github.com/shashiranjanraj/maison/app/repositories"
	"github.com/shashiranjanraj/maison/app/services"
	"github.com/shashiranjanraj/maison/pkg/apperr"
	"github.com/shashiranjanraj/maison/pkg/ctx"
	"gorm.io/gorm"
)

// maxImageBytes caps product image uploads at 5 MB.
const maxImageBytes = 5 << 20

// ProductController exposes the public catalogue and the admin mutations.
type ProductController struct {
	service *services.CatalogService
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{service: services.NewCatalogService(db)}
}

// Index lists products. Filters: category, minPrice, maxPrice, search,
// sort (price_asc | price_desc | newest).
func (c *ProductController) Index(cx *ctx.Context) {
	q := repositories.CatalogQuery{
		Category: cx.Query("category"),
		MinPrice: cx.Query("minPrice"),
		MaxPrice: cx.Query("maxPrice"),
		Search:   cx.Query("search"),
		Sort:     cx.DefaultQuery("sort", "default"),
	}

	products, err := c.service.List(q)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(products)
}

// Show returns one product with its rating summary.
func (c *ProductController) Show(cx *ctx.Context) {
	id, ok := cx.ParamUint("id")
	if !ok {
		cx.NotFound("Product")
		return
	}

	detail, err := c.service.Get(id)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(detail)
}

// Categories lists the filterable categories.
func (c *ProductController) Categories(cx *ctx.Context) {
	categories, err := c.service.Categories()
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(categories)
}

// Trending lists the most-carted products.
func (c *ProductController) Trending(cx *ctx.Context) {
	trending, err := c.service.Trending()
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(trending)
}

// Store creates a product. Admin only.
func (c *ProductController) Store(cx *ctx.Context) {
	var in services.ProductInput
	if !cx.BindJSON(&in) {
		return
	}

	product, err := c.service.Create(in)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Created(product)
}

// Update replaces a product's fields. Admin only.
func (c *ProductController) Update(cx *ctx.Context) {
	id, ok := cx.ParamUint("id")
	if !ok {
		cx.NotFound("Product")
		return
	}

	var in services.ProductInput
	if !cx.BindJSON(&in) {
		return
	}

	product, err := c.service.Update(id, in)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(product)
}

// Destroy removes a product. Admin only.
func (c *ProductController) Destroy(cx *ctx.Context) {
	id, ok := cx.ParamUint("id")
	if !ok {
		cx.NotFound("Product")
		return
	}

	if err := c.service.Delete(id); err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(map[string]string{"message": "Product deleted"})
}

// UploadImage accepts a multipart "image" file and attaches it to the
// product. Admin only.
func (c *ProductController) UploadImage(cx *ctx.Context) {
	id, ok := cx.ParamUint("id")
	if !ok {
		cx.NotFound("Product")
		return
	}

	if err := cx.R.ParseMultipartForm(maxImageBytes); err != nil {
		cx.Fail(apperr.Validation("Upload must be multipart form data under 5 MB"))
		return
	}

	file, header, err := cx.R.FormFile("image")
	if err != nil {
		cx.Fail(apperr.Validation("Missing image file"))
		return
	}
	defer file.Close()

	product, err := c.service.UploadImage(id, header.Filename, file)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(product)
}
