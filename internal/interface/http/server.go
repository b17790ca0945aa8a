package httpapi

import (
	"context"
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	appAuth "github.com/abdhesh369/Portfolio-sub001/internal/application/auth"
	"github.com/abdhesh369/Portfolio-sub001/internal/domain/content"
	"github.com/abdhesh369/Portfolio-sub001/internal/infra/memory"
	authinfra "github.com/abdhesh369/Portfolio-sub001/internal/infrastructure/auth"
	"github.com/abdhesh369/Portfolio-sub001/internal/infrastructure/config"
	"github.com/abdhesh369/Portfolio-sub001/internal/infrastructure/notify"
	"github.com/abdhesh369/Portfolio-sub001/internal/infrastructure/persistence/postgres"
	"github.com/abdhesh369/Portfolio-sub001/internal/infrastructure/ratelimit"
	"github.com/abdhesh369/Portfolio-sub001/internal/infrastructure/revocation"
)

const (
	errCodeBadRequest         = "BAD_REQUEST"
	errCodeValidation         = "VALIDATION_ERROR"
	errCodeInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	errCodeUnauthorized       = "AUTH_UNAUTHORIZED"
	errCodeTokenRevoked       = "AUTH_TOKEN_REVOKED"
	errCodeTokenInvalid       = "AUTH_TOKEN_INVALID"
	errCodeNotFound           = "NOT_FOUND"
	errCodeConflict           = "CONFLICT"
	errCodeRateLimited        = "RATE_LIMITED"
	errCodeInternal           = "INTERNAL_ERROR"
	sessionCookieName         = "auth_token"
)

// ContentRepository 定義 HTTP 層需要的全部內容存取接口；
// postgres 與 memory 兩種實作都滿足它。
type ContentRepository interface {
	ListProjects(ctx context.Context, featuredOnly bool) ([]content.Project, error)
	GetProject(ctx context.Context, id string) (content.Project, error)
	CreateProject(ctx context.Context, p content.Project) (content.Project, error)
	UpdateProject(ctx context.Context, p content.Project) (content.Project, error)
	DeleteProject(ctx context.Context, id string) error

	ListSkills(ctx context.Context) ([]content.Skill, error)
	CreateSkill(ctx context.Context, s content.Skill) (content.Skill, error)
	UpdateSkill(ctx context.Context, s content.Skill) (content.Skill, error)
	DeleteSkill(ctx context.Context, id string) error

	ListExperiences(ctx context.Context) ([]content.Experience, error)
	CreateExperience(ctx context.Context, e content.Experience) (content.Experience, error)
	UpdateExperience(ctx context.Context, e content.Experience) (content.Experience, error)
	DeleteExperience(ctx context.Context, id string) error

	ListArticles(ctx context.Context, publishedOnly bool) ([]content.Article, error)
	GetArticleBySlug(ctx context.Context, slug string) (content.Article, error)
	CreateArticle(ctx context.Context, a content.Article) (content.Article, error)
	UpdateArticle(ctx context.Context, a content.Article) (content.Article, error)
	DeleteArticle(ctx context.Context, id string) error

	ListTestimonials(ctx context.Context, approvedOnly bool) ([]content.Testimonial, error)
	CreateTestimonial(ctx context.Context, t content.Testimonial) (content.Testimonial, error)
	UpdateTestimonial(ctx context.Context, t content.Testimonial) (content.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id string) error

	CreateMessage(ctx context.Context, m content.Message) (content.Message, error)
	ListMessages(ctx context.Context, unreadOnly bool) ([]content.Message, error)
	GetMessage(ctx context.Context, id string) (content.Message, error)
	MarkMessageRead(ctx context.Context, id string) error
	DeleteMessage(ctx context.Context, id string) error

	ListSEOSettings(ctx context.Context) ([]content.SEOSetting, error)
	GetSEOSetting(ctx context.Context, page string) (content.SEOSetting, error)
	CreateSEOSetting(ctx context.Context, s content.SEOSetting) (content.SEOSetting, error)
	UpdateSEOSetting(ctx context.Context, s content.SEOSetting) (content.SEOSetting, error)
	DeleteSEOSetting(ctx context.Context, page string) error

	RecordPageView(ctx context.Context, v content.PageView) error
	PageViewStats(ctx context.Context, since time.Time) ([]content.PageViewStat, error)
}

// postgresRepos 把各 Postgres repo 組合成單一 ContentRepository。
type postgresRepos struct {
	*postgres.ContentRepo
	*postgres.ArticleRepo
	*postgres.MessageRepo
	*postgres.SEORepo
	*postgres.AnalyticsRepo
}

// Server 封裝 HTTP 路由與依賴。
type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	db           *sql.DB
	repo         ContentRepository
	store        *memory.Store
	verifier     *authinfra.AdminVerifier
	tokenSvc     *authinfra.JWTIssuer
	revoked      revocation.Store
	apiLimiter   ratelimit.Limiter
	loginLimiter ratelimit.Limiter
	loginUC      *appAuth.LoginUseCase
	logoutUC     *appAuth.LogoutUseCase
	notifier     *notify.TelegramNotifier
	redisClient  *redis.Client
	logger       zerolog.Logger
}

// NewServer 建立 API 伺服器。db 為 nil 時退回記憶體存儲；
// 設定了 Redis 位址時，撤銷清單與限流計數改用 Redis。
func NewServer(cfg config.Config, db *sql.DB, logger zerolog.Logger) (*Server, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	// 未設定信任代理時不信任任何 X-Forwarded-For，
	// 否則限流的來源 IP 可被偽造標頭繞過。
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		return nil, err
	}

	store := memory.NewStore()
	var repo ContentRepository
	if db != nil {
		repo = postgresRepos{
			ContentRepo:   postgres.NewContentRepo(db),
			ArticleRepo:   postgres.NewArticleRepo(db),
			MessageRepo:   postgres.NewMessageRepo(db),
			SEORepo:       postgres.NewSEORepo(db),
			AnalyticsRepo: postgres.NewAnalyticsRepo(db),
		}
	} else {
		repo = store
	}

	verifier, err := authinfra.NewAdminVerifier(cfg.Auth.AdminPassword, cfg.Auth.AdminAPIKey)
	if err != nil {
		return nil, err
	}
	tokenSvc := authinfra.NewJWTIssuer(cfg.Auth.Secret, cfg.Auth.TokenTTL)

	var revoked revocation.Store
	var apiLimiter, loginLimiter ratelimit.Limiter
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		revoked = revocation.NewRedisStore(client, "portfolio")
		apiLimiter = ratelimit.NewRedisLimiter(client, "portfolio:api", ratelimit.Config{
			Max:    cfg.RateLimit.API.Max,
			Window: cfg.RateLimit.API.Window,
		})
		loginLimiter = ratelimit.NewRedisLimiter(client, "portfolio:login", ratelimit.Config{
			Max:    cfg.RateLimit.Login.Max,
			Window: cfg.RateLimit.Login.Window,
		})
		redisClient = client
	} else {
		revoked = revocation.NewMemoryStore()
		apiLimiter = ratelimit.NewMemoryLimiter(ratelimit.Config{
			Max:    cfg.RateLimit.API.Max,
			Window: cfg.RateLimit.API.Window,
		})
		loginLimiter = ratelimit.NewMemoryLimiter(ratelimit.Config{
			Max:    cfg.RateLimit.Login.Max,
			Window: cfg.RateLimit.Login.Window,
		})
	}

	var notifier *notify.TelegramNotifier
	if cfg.Notify.TelegramToken != "" && cfg.Notify.TelegramChatID != 0 {
		notifier = notify.NewTelegramNotifier(cfg.Notify.TelegramToken, cfg.Notify.TelegramChatID, cfg.Notify.Prefix)
	}

	s := &Server{
		engine:       engine,
		cfg:          cfg,
		db:           db,
		repo:         repo,
		store:        store,
		verifier:     verifier,
		tokenSvc:     tokenSvc,
		revoked:      revoked,
		apiLimiter:   apiLimiter,
		loginLimiter: loginLimiter,
		loginUC:      appAuth.NewLoginUseCase(verifier, tokenSvc, cfg.Auth.FailDelay),
		logoutUC:     appAuth.NewLogoutUseCase(revoked),
		notifier:     notifier,
		redisClient:  redisClient,
		logger:       logger,
	}
	s.registerRoutes()
	return s, nil
}

// Handler 回傳路由處理器，供 HTTP server 掛載。
func (s *Server) Handler() *gin.Engine {
	return s.engine
}

// Store 主要用於測試注入初始資料。
func (s *Server) Store() *memory.Store {
	return s.store
}

// Close 釋放撤銷清單與限流器持有的資源。
// Redis client 由 Server 持有並只關閉一次。
func (s *Server) Close() error {
	s.apiLimiter.Close()
	s.loginLimiter.Close()
	err := s.revoked.Close()
	if s.redisClient != nil {
		return s.redisClient.Close()
	}
	return err
}

func (s *Server) registerRoutes() {
	r := s.engine
	r.Use(gin.Recovery(), s.requestLogger(), s.cors())

	r.GET("/health", s.handleHealth)
	r.NoRoute(s.handleVersionFallback)

	v1 := r.Group("/api/v1")
	v1.Use(s.rateLimit(s.apiLimiter, false))

	v1.GET("/ping", s.handlePing)
	v1.GET("/health", s.handleHealth)

	v1.POST("/auth/login", s.rateLimit(s.loginLimiter, true), s.handleLogin)
	v1.GET("/auth/status", s.requireAuth(), s.handleAuthStatus)
	v1.POST("/auth/logout", s.requireAuth(), s.handleLogout)

	// 公開讀取
	v1.GET("/projects", s.handleListProjects)
	v1.GET("/projects/:id", s.handleGetProject)
	v1.GET("/skills", s.handleListSkills)
	v1.GET("/experiences", s.handleListExperiences)
	v1.GET("/articles", s.handleListArticles)
	v1.GET("/articles/:slug", s.handleGetArticle)
	v1.GET("/testimonials", s.handleListTestimonials)
	v1.GET("/seo", s.handleListSEO)
	v1.GET("/seo/:page", s.handleGetSEO)

	// 公開寫入
	v1.POST("/messages", s.handleCreateMessage)
	v1.POST("/testimonials", s.handleCreateTestimonial)
	v1.POST("/analytics/track", s.handleTrackPageView)

	// 管理端
	admin := v1.Group("", s.requireAuth())
	admin.POST("/projects", s.handleCreateProject)
	admin.PUT("/projects/:id", s.handleUpdateProject)
	admin.DELETE("/projects/:id", s.handleDeleteProject)
	admin.POST("/skills", s.handleCreateSkill)
	admin.PUT("/skills/:id", s.handleUpdateSkill)
	admin.DELETE("/skills/:id", s.handleDeleteSkill)
	admin.POST("/experiences", s.handleCreateExperience)
	admin.PUT("/experiences/:id", s.handleUpdateExperience)
	admin.DELETE("/experiences/:id", s.handleDeleteExperience)
	admin.POST("/articles", s.handleCreateArticle)
	admin.PUT("/articles/:id", s.handleUpdateArticle)
	admin.DELETE("/articles/:id", s.handleDeleteArticle)
	admin.PUT("/testimonials/:id", s.handleUpdateTestimonial)
	admin.DELETE("/testimonials/:id", s.handleDeleteTestimonial)
	admin.POST("/seo", s.handleCreateSEO)
	admin.PUT("/seo/:page", s.handleUpdateSEO)
	admin.DELETE("/seo/:page", s.handleDeleteSEO)
	admin.GET("/messages", s.handleListMessages)
	admin.GET("/messages/:id", s.handleGetMessage)
	admin.POST("/messages/:id/read", s.handleMarkMessageRead)
	admin.DELETE("/messages/:id", s.handleDeleteMessage)
	admin.GET("/admin/articles", s.handleListAllArticles)
	admin.GET("/admin/testimonials", s.handleListAllTestimonials)
	admin.GET("/admin/analytics/stats", s.handlePageViewStats)
}
