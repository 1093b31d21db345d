package handlers

import (
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-shop/internal/httperr"
	"github.com/BruksfildServices01/barber-shop/internal/httpresp"
	"github.com/BruksfildServices01/barber-shop/internal/imagestore"
	"github.com/BruksfildServices01/barber-shop/internal/middleware"
	"github.com/BruksfildServices01/barber-shop/internal/models"
)

type ProductHandler struct {
	db     *gorm.DB
	images imagestore.Store
}

func NewProductHandler(db *gorm.DB, images imagestore.Store) *ProductHandler {
	return &ProductHandler{db: db, images: images}
}

// ======================================================
// RESPONSES
// ======================================================

type ProductSummary struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
	Image string  `json:"image"`
}

type BarberWithProducts struct {
	BarberID   uint             `json:"barber_id"`
	BarberName string           `json:"barber_name"`
	Products   []ProductSummary `json:"products"`
}

// ======================================================
// LIST (agrupado por barbeiro; barbeiro vê só o próprio)
// ======================================================

func (h *ProductHandler) List(c *gin.Context) {
	q := h.db.Preload("Barber")

	if middleware.CurrentRole(c) == models.RoleBarber {
		q = q.Where("barber_id = ?", middleware.CurrentUserID(c))
	}

	var products []models.Product
	if err := q.Order("barber_id ASC, id ASC").Find(&products).Error; err != nil {
		httperr.Internal(c, "failed_to_list_products", "Erro ao listar produtos.")
		return
	}

	var out []BarberWithProducts
	index := map[uint]int{}

	for _, p := range products {
		i, ok := index[p.BarberID]
		if !ok {
			out = append(out, BarberWithProducts{
				BarberID:   p.BarberID,
				BarberName: p.Barber.Fullname,
			})
			i = len(out) - 1
			index[p.BarberID] = i
		}
		out[i].Products = append(out[i].Products, ProductSummary{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.Price,
			Stock: p.Stock,
			Image: p.Image,
		})
	}

	httpresp.List(c, out)
}

// ======================================================
// CREATE (multipart: name, price, stock, image)
// ======================================================

func (h *ProductHandler) Create(c *gin.Context) {
	barberID := middleware.CurrentUserID(c)

	name := strings.TrimSpace(c.PostForm("name"))
	price, errPrice := strconv.ParseFloat(c.PostForm("price"), 64)
	stock, errStock := strconv.Atoi(c.PostForm("stock"))

	if name == "" || errPrice != nil || errStock != nil || price < 0 || stock < 0 {
		httperr.BadRequest(c, "validation_error", "Nome, preço e estoque são obrigatórios.")
		return
	}

	imageName, ok := h.storeUploadedImage(c)
	if !ok {
		return
	}

	product := models.Product{
		Name:     name,
		Price:    price,
		Stock:    stock,
		Image:    imageName,
		BarberID: barberID,
	}

	if err := h.db.Create(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_create_product", "Erro ao criar produto.")
		return
	}

	httpresp.Created(c, product)
}

// ======================================================
// UPDATE (campos + imagem opcional)
// ======================================================

func (h *ProductHandler) Update(c *gin.Context) {
	barberID := middleware.CurrentUserID(c)
	id := c.Param("id")

	var product models.Product
	if err := h.db.
		Where("id = ? AND barber_id = ?", id, barberID).
		First(&product).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, httperr.CodeProductNotFound, "Produto não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_product", "Erro ao carregar produto.")
		return
	}

	if name := strings.TrimSpace(c.PostForm("name")); name != "" {
		product.Name = name
	}
	if v := c.PostForm("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			httperr.BadRequest(c, "validation_error", "Preço inválido.")
			return
		}
		product.Price = price
	}
	if v := c.PostForm("stock"); v != "" {
		stock, err := strconv.Atoi(v)
		if err != nil || stock < 0 {
			httperr.BadRequest(c, "validation_error", "Estoque inválido.")
			return
		}
		product.Stock = stock
	}

	oldImage := ""
	if _, err := c.FormFile("image"); err == nil {
		imageName, ok := h.storeUploadedImage(c)
		if !ok {
			return
		}
		oldImage = product.Image
		product.Image = imageName
	}

	if err := h.db.Save(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_update_product", "Erro ao atualizar produto.")
		return
	}

	// Imagem antiga só sai depois do update confirmado.
	if oldImage != "" {
		if err := h.images.Remove(c.Request.Context(), oldImage); err != nil {
			log.Println("remove old image:", err)
		}
	}

	httpresp.OK(c, product)
}

// ======================================================
// DELETE
// ======================================================

func (h *ProductHandler) Delete(c *gin.Context) {
	barberID := middleware.CurrentUserID(c)
	id := c.Param("id")

	var product models.Product
	if err := h.db.
		Where("id = ? AND barber_id = ?", id, barberID).
		First(&product).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, httperr.CodeProductNotFound, "Produto não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_product", "Erro ao carregar produto.")
		return
	}

	if err := h.db.Delete(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_product", "Erro ao excluir produto.")
		return
	}

	if product.Image != "" {
		if err := h.images.Remove(c.Request.Context(), product.Image); err != nil {
			log.Println("remove image:", err)
		}
	}

	c.Status(204)
}

// ======================================================
// IMAGE (pública, endereçada pelo nome gravado)
// ======================================================

func (h *ProductHandler) Image(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	if err := h.db.Select("image").Where("id = ?", id).First(&product).Error; err != nil || product.Image == "" {
		httperr.NotFound(c, "image_not_found", "Imagem não encontrada.")
		return
	}

	rc, err := h.images.Open(c.Request.Context(), product.Image)
	if err != nil {
		httperr.NotFound(c, "image_not_found", "Imagem não encontrada.")
		return
	}
	defer rc.Close()

	c.Header("Content-Type", imagestore.ContentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		log.Println("serve image:", err)
	}
}

// ======================================================
// HELPERS
// ======================================================

func (h *ProductHandler) storeUploadedImage(c *gin.Context) (string, bool) {
	fh, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "validation_error", "Imagem é obrigatória.")
		return "", false
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Erro ao ler a imagem.")
		return "", false
	}
	defer f.Close()

	data, name, err := imagestore.Process(f)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Arquivo de imagem inválido.")
		return "", false
	}

	if err := h.images.Save(c.Request.Context(), name, data); err != nil {
		httperr.Internal(c, "failed_to_store_image", "Erro ao salvar a imagem.")
		return "", false
	}

	return name, true
}
