package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"sellora/internal/models"
	"sellora/internal/repositories"
)

// Client ходит в продуктовый сервис по HTTP и переводит его ответы и сбои
// в типы identity-сервиса. Одна попытка на вызов, ретраев нет.
type Client struct {
	baseURL  string
	http     *http.Client
	accounts repositories.AccountRepository
}

func NewClient(baseURL string, timeout time.Duration, accounts repositories.AccountRepository) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		accounts: accounts,
	}
}

func addBearer(req *http.Request, token string) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// do — единый путь запроса: транспортный сбой -> ConnectionError,
// не-2xx -> ResponseError с сырым телом, битый JSON -> DecodeError.
// out == nil означает "тело не интересует".
func (c *Client) do(req *http.Request, token string, out interface{}) error {
	addBearer(req, token)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[catalog][%s %s] connection failed: err=%v", req.Method, req.URL.Path, err)
		return &ConnectionError{Err: err}
	}
	defer resp.Body.Close()

	rawBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[catalog][%s %s] error response: status=%d body=%s", req.Method, req.URL.Path, resp.StatusCode, rawBody)
		return &ResponseError{Status: resp.StatusCode, Body: string(rawBody)}
	}

	if out == nil || len(bytes.TrimSpace(rawBody)) == 0 {
		return nil
	}

	if err := json.Unmarshal(rawBody, out); err != nil {
		log.Printf("[catalog][%s %s] decode failed: status=%d body=%s err=%v", req.Method, req.URL.Path, resp.StatusCode, rawBody, err)
		return &DecodeError{Body: string(rawBody), Err: err}
	}
	return nil
}

func (c *Client) getJSON(path, token string, out interface{}) error {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &ConnectionError{Err: err}
	}
	return c.do(req, token, out)
}

func (c *Client) sendJSON(method, path string, payload interface{}, token string, out interface{}) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal catalog request: %w", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return &ConnectionError{Err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, token, out)
}

// filterByActiveOwners оставляет только товары активных владельцев и
// пересчитывает TotalCount по отфильтрованному списку: каталогу не
// доверяем знание о том, чьи аккаунты сейчас активны. Множество id
// снимается заново на каждый вызов.
func (c *Client) filterByActiveOwners(list *models.ProductList) error {
	activeIDs, err := c.accounts.ActiveIDs()
	if err != nil {
		return fmt.Errorf("active accounts lookup: %w", err)
	}
	filtered := make([]models.Product, 0, len(list.Items))
	for _, p := range list.Items {
		if _, ok := activeIDs[p.UserID]; ok {
			filtered = append(filtered, p)
		}
	}
	list.Items = filtered
	list.TotalCount = len(filtered)
	return nil
}

// GetByID — 404 каталога не ошибка: явный "не найден" (nil, nil),
// чтобы вызывающий отличал "нет такого" от "сервис сломан".
func (c *Client) GetByID(productID int, token string) (*models.Product, error) {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/api/products/%d", c.baseURL, productID), nil)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	addBearer(req, token)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[catalog][get-by-id] connection failed: id=%d err=%v", productID, err)
		return nil, &ConnectionError{Err: err}
	}
	defer resp.Body.Close()

	rawBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		log.Printf("[catalog][get-by-id] product %d not found", productID)
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[catalog][get-by-id] error response: id=%d status=%d body=%s", productID, resp.StatusCode, rawBody)
		return nil, &ResponseError{Status: resp.StatusCode, Body: string(rawBody)}
	}

	var product models.Product
	if err := json.Unmarshal(rawBody, &product); err != nil {
		log.Printf("[catalog][get-by-id] decode failed: id=%d body=%s err=%v", productID, rawBody, err)
		return nil, &DecodeError{Body: string(rawBody), Err: err}
	}
	return &product, nil
}

// GetAll — публичный листинг, фильтруется по активным владельцам.
func (c *Client) GetAll(token string) (*models.ProductList, error) {
	var list models.ProductList
	if err := c.getJSON("/api/products/all", token, &list); err != nil {
		return nil, err
	}
	if err := c.filterByActiveOwners(&list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetByName — публичный поиск, фильтруется по активным владельцам.
func (c *Client) GetByName(name, token string) (*models.ProductList, error) {
	var list models.ProductList
	path := "/api/products/search?name=" + url.QueryEscape(name)
	if err := c.getJSON(path, token, &list); err != nil {
		return nil, err
	}
	if err := c.filterByActiveOwners(&list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetMine — товары самого владельца; видимость по активности здесь не
// применяется: своими товарами владелец управляет в любом состоянии.
func (c *Client) GetMine(token string) (*models.ProductList, error) {
	var list models.ProductList
	if err := c.getJSON("/api/products/my-products", token, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) GetFiltered(filter models.ProductFilter) (*models.ProductList, error) {
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	params := url.Values{}
	if s := strings.TrimSpace(filter.Search); s != "" {
		params.Set("search", s)
	}
	if filter.CategoryID > 0 {
		params.Set("categoryId", strconv.Itoa(filter.CategoryID))
	}
	if filter.MinPrice != nil {
		params.Set("minPrice", strconv.FormatFloat(*filter.MinPrice, 'f', -1, 64))
	}
	if filter.MaxPrice != nil {
		params.Set("maxPrice", strconv.FormatFloat(*filter.MaxPrice, 'f', -1, 64))
	}
	if filter.Available != nil {
		params.Set("available", strconv.FormatBool(*filter.Available))
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(pageSize))

	var list models.ProductList
	if err := c.getJSON("/api/products/filter?"+params.Encode(), "", &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) Create(dto *models.CreateProductRequest, token string) (*models.Product, error) {
	var product models.Product
	if err := c.sendJSON(http.MethodPost, "/api/products/create", dto, token, &product); err != nil {
		return nil, err
	}
	log.Printf("[catalog][create] product created: id=%d", product.ProductID)
	return &product, nil
}

func (c *Client) Update(productID int, dto *models.UpdateProductRequest, token string) error {
	path := fmt.Sprintf("/api/products/update/%d", productID)
	if err := c.sendJSON(http.MethodPut, path, dto, token, nil); err != nil {
		return err
	}
	log.Printf("[catalog][update] product %d updated", productID)
	return nil
}

func (c *Client) Delete(productID int, token string) error {
	path := fmt.Sprintf("/api/products/delete/%d", productID)
	if err := c.sendJSON(http.MethodDelete, path, nil, token, nil); err != nil {
		return err
	}
	log.Printf("[catalog][delete] product %d deleted", productID)
	return nil
}

// AddImages — форвардинг multipart-файлов в каталог как есть.
func (c *Client) AddImages(productID int, files []*multipart.FileHeader, token string) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, fh := range files {
		if fh.Size == 0 {
			continue
		}
		f, err := fh.Open()
		if err != nil {
			return fmt.Errorf("open upload %q: %w", fh.Filename, err)
		}
		part, err := w.CreateFormFile("images", fh.Filename)
		if err != nil {
			f.Close()
			return fmt.Errorf("multipart part %q: %w", fh.Filename, err)
		}
		if _, err := io.Copy(part, f); err != nil {
			f.Close()
			return fmt.Errorf("copy upload %q: %w", fh.Filename, err)
		}
		f.Close()
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finish multipart: %w", err)
	}

	path := fmt.Sprintf("%s/api/products/%d/images", c.baseURL, productID)
	req, err := http.NewRequest(http.MethodPost, path, &buf)
	if err != nil {
		return &ConnectionError{Err: err}
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := c.do(req, token, nil); err != nil {
		return err
	}
	log.Printf("[catalog][add-images] %d file(s) forwarded for product %d", len(files), productID)
	return nil
}

func (c *Client) RemoveImage(productID, imageID int, token string) error {
	path := fmt.Sprintf("/api/products/%d/images/%d", productID, imageID)
	if err := c.sendJSON(http.MethodDelete, path, nil, token, nil); err != nil {
		return err
	}
	log.Printf("[catalog][remove-image] image %d of product %d deleted", imageID, productID)
	return nil
}
