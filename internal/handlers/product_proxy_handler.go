package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"sellora/internal/catalog"
	"sellora/internal/models"
)

// ProductProxyHandler — публичная и владельческая поверхность каталога,
// вся работа с продуктовым сервисом идёт через catalog.Client.
type ProductProxyHandler struct {
	client *catalog.Client
}

func NewProductProxyHandler(client *catalog.Client) *ProductProxyHandler {
	return &ProductProxyHandler{client: client}
}

// @Summary      Товар по id
// @Tags         Products
// @Produce      json
// @Param        id   path      int  true  "ID товара"
// @Success      200  {object}  models.Product
// @Failure      404  {object}  map[string]string
// @Router       /api/products-proxy/{id} [get]
func (h *ProductProxyHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID."})
		return
	}

	product, err := h.client.GetByID(id, getToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found."})
		return
	}
	c.JSON(http.StatusOK, product)
}

// @Summary      Все товары активных продавцов
// @Tags         Products
// @Produce      json
// @Success      200  {object}  models.ProductList
// @Router       /api/products-proxy/all [get]
func (h *ProductProxyHandler) GetAll(c *gin.Context) {
	list, err := h.client.GetAll("")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Поиск товаров по имени
// @Tags         Products
// @Produce      json
// @Param        name  query     string  true  "Строка поиска"
// @Success      200   {object}  models.ProductList
// @Router       /api/products-proxy/search [get]
func (h *ProductProxyHandler) Search(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required."})
		return
	}

	list, err := h.client.GetByName(name, "")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Мои товары
// @Tags         Products
// @Produce      json
// @Success      200  {object}  models.ProductList
// @Failure      401  {object}  map[string]string
// @Router       /api/products-proxy/mine [get]
func (h *ProductProxyHandler) GetMine(c *gin.Context) {
	list, err := h.client.GetMine(getToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Фильтрованный список товаров
// @Tags         Products
// @Produce      json
// @Success      200  {object}  models.ProductList
// @Router       /api/products-proxy/filter [get]
func (h *ProductProxyHandler) Filter(c *gin.Context) {
	var filter models.ProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := h.client.GetFiltered(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Создание товара
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        product  body      models.CreateProductRequest  true  "Новый товар"
// @Success      200      {object}  map[string]string
// @Failure      401      {object}  map[string]string
// @Router       /api/products-proxy/create [post]
func (h *ProductProxyHandler) Create(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.client.Create(&req, getToken(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "The product was uploaded successfully."})
}

// @Summary      Обновление товара
// @Tags         Products
// @Accept       json
// @Param        id       path  int                          true  "ID товара"
// @Param        product  body  models.UpdateProductRequest  true  "Изменения"
// @Success      204
// @Router       /api/products-proxy/{id} [put]
func (h *ProductProxyHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID."})
		return
	}
	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.client.Update(id, &req, getToken(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Удаление товара
// @Tags         Products
// @Param        id  path  int  true  "ID товара"
// @Success      204
// @Router       /api/products-proxy/{id} [delete]
func (h *ProductProxyHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID."})
		return
	}

	if err := h.client.Delete(id, getToken(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Загрузка изображений товара
// @Tags         Products
// @Accept       multipart/form-data
// @Param        id      path      int   true  "ID товара"
// @Param        images  formData  file  true  "Файлы изображений"
// @Success      204
// @Router       /api/products-proxy/{id}/images [post]
func (h *ProductProxyHandler) AddImages(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID."})
		return
	}
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one image is required."})
		return
	}

	if err := h.client.AddImages(id, files, getToken(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Удаление изображения товара
// @Tags         Products
// @Param        id        path  int  true  "ID товара"
// @Param        image_id  path  int  true  "ID изображения"
// @Success      204
// @Router       /api/products-proxy/{id}/images/{image_id} [delete]
func (h *ProductProxyHandler) RemoveImage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID."})
		return
	}
	imageID, err := strconv.Atoi(c.Param("image_id"))
	if err != nil || imageID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image ID."})
		return
	}

	if err := h.client.RemoveImage(id, imageID, getToken(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
