// Package router wires the gin route table.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "taskboard/internal/feature/auth/transport/handler"
	taskhandler "taskboard/internal/feature/tasks/transport/handler"
	"taskboard/internal/platform/session"
)

// New builds the gin engine with every route registered. Templates are
// loaded by the caller so tests can supply their own.
func New(authH *authhandler.AuthHandler, taskH *taskhandler.TaskHandler, auth session.Authenticator) *gin.Engine {
	r := gin.Default()

	// Liveness probe.
	r.GET("/healthz", Health)

	// Login is reachable without a session.
	r.GET("/login", authH.LoginPage)
	r.POST("/login", authH.Login)
	r.GET("/logout", authH.Logout)

	// Session-gated pages. Only /home and /middle require a session;
	// the remaining pages are reachable without one. That asymmetry is
	// the shipped behavior and is intentional here.
	protected := r.Group("/")
	protected.Use(session.AuthRequired(auth))
	{
		protected.GET("/home", taskH.Home)
		protected.GET("/middle", Page("middle.html"))
	}

	r.GET("/gerenciar", Page("gerenciar.html"))
	r.GET("/outros", Page("outros.html"))
	r.GET("/projetos", Page("projetos.html"))
	r.GET("/fechamento", Page("fechamento.html"))

	// Mutating routes accept POST only and answer with redirects.
	r.POST("/create-task", taskH.CreateTask)
	r.POST("/delete-task/:id", taskH.DeleteTask)
	r.POST("/check-task/:id", taskH.CheckTask)
	r.POST("/create-user", authH.CreateUser)

	return r
}
