package router

import (
	"github.com/gin-gonic/gin"

	"minifeed/internal/handler"
	"minifeed/internal/middleware"
	"minifeed/internal/service"
	"minifeed/internal/view"
	"minifeed/pkg/telemetry"
)

// Services is everything the routes need.
type Services struct {
	Users     *service.UserService
	Sessions  *service.SessionService
	Posts     *service.PostService
	Comments  *service.CommentService
	Reactions *service.ReactionService
	Feed      *service.FeedService

	Cookie         middleware.SessionCookie
	Renderer       *view.Renderer
	HealthChecks   map[string]handler.HealthCheck
	MetricsEnabled bool
}

func InitRouter(s Services) *gin.Engine {
	r := gin.New()
	r.HTMLRender = s.Renderer
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(),
		gin.Recovery(),
		middleware.Identity(s.Sessions, s.Cookie),
	)

	user := handler.NewUserHandler(s.Users, s.Sessions, s.Cookie)
	feed := handler.NewFeedHandler(s.Feed)
	post := handler.NewPostHandler(s.Posts)
	comment := handler.NewCommentHandler(s.Comments)
	reaction := handler.NewReactionHandler(s.Reactions)
	health := handler.NewHealthHandler(s.HealthChecks)

	r.GET("/health", health.Health)
	if s.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(telemetry.Handler()))
	}

	// 浏览与账号接口，匿名可访问
	r.GET("/", feed.Feed)
	r.GET("/register", user.RegisterPage)
	r.POST("/register", user.Register)
	r.GET("/login", user.LoginPage)
	r.POST("/login", user.Login)
	r.GET("/logout", user.Logout)

	// 登录态接口
	authGroup := r.Group("/")
	authGroup.Use(middleware.RequireLogin())
	{
		authGroup.POST("/add", post.CreatePost)
		authGroup.POST("/comment/:id", comment.CreateComment)
		authGroup.POST("/react/:id", reaction.React)

		authGroup.GET("/add", handler.MethodNotAllowed)
		authGroup.GET("/comment/:id", handler.MethodNotAllowed)
		authGroup.GET("/react/:id", handler.MethodNotAllowed)
	}

	return r
}
