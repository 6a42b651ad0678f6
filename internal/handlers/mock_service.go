package handlers

import (
	"context"
	"net/http"

	"bloglist/internal/models"
	"bloglist/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockBlogs struct {
	createBlog models.Blog
	createErr  error
	listResp   []models.Blog
	listErr    error
	getBlog    models.Blog
	getErr     error
	updateBlog models.Blog
	updateErr  error
	deleteErr  error
	statsResp  service.BlogStats
	statsErr   error

	lastCreateInput service.CreateBlogInput
	lastGetID       string
	lastUpdateID    string
	lastUpdateInput service.UpdateBlogInput
	lastDeleteID    string
	deleteCalls     int
}

func (m *mockBlogs) Create(ctx context.Context, input service.CreateBlogInput) (models.Blog, error) {
	m.lastCreateInput = input
	return m.createBlog, m.createErr
}

func (m *mockBlogs) List(ctx context.Context) ([]models.Blog, error) {
	return m.listResp, m.listErr
}

func (m *mockBlogs) Get(ctx context.Context, id string) (models.Blog, error) {
	m.lastGetID = id
	return m.getBlog, m.getErr
}

func (m *mockBlogs) Update(ctx context.Context, id string, input service.UpdateBlogInput) (models.Blog, error) {
	m.lastUpdateID = id
	m.lastUpdateInput = input
	return m.updateBlog, m.updateErr
}

func (m *mockBlogs) Delete(ctx context.Context, id string) error {
	m.deleteCalls++
	m.lastDeleteID = id
	return m.deleteErr
}

func (m *mockBlogs) Stats(ctx context.Context) (service.BlogStats, error) {
	return m.statsResp, m.statsErr
}

type mockUsers struct {
	registerUser models.User
	registerErr  error
	listResp     []models.User
	listErr      error

	lastRegisterInput service.RegisterUserInput
}

func (m *mockUsers) Register(ctx context.Context, input service.RegisterUserInput) (models.User, error) {
	m.lastRegisterInput = input
	return m.registerUser, m.registerErr
}

func (m *mockUsers) List(ctx context.Context) ([]models.User, error) {
	return m.listResp, m.listErr
}

type mockAuth struct {
	tokenResult service.TokenResult
	tokenErr    error
	parseID     string
	parseErr    error

	lastGenUsername string
	lastGenPassword string
	lastParseToken  string
}

func (m *mockAuth) GenerateToken(ctx context.Context, username, password string) (service.TokenResult, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.tokenResult, m.tokenErr
}

func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func jsonHeader(req *http.Request) *http.Request {
	req.Header.Set("Content-Type", "application/json")
	return req
}
