package routes

import (
	"net/http"

	"cloudstage/admin"
	"cloudstage/agi"
	"cloudstage/artists"
	"cloudstage/auth"
	"cloudstage/events"
	"cloudstage/filemgr"
	"cloudstage/live"
	"cloudstage/middleware"
	"cloudstage/movies"
	"cloudstage/ratelim"
	"cloudstage/tickets"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/bannerpic/*filepath", http.Dir("static/bannerpic"))
	router.ServeFiles("/static/artistpic/*filepath", http.Dir("static/artistpic"))
	router.ServeFiles("/static/eventpic/*filepath", http.Dir("static/eventpic"))
	router.ServeFiles("/static/moviepic/*filepath", http.Dir("static/moviepic"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.Logout))
	router.POST("/api/auth/token/refresh", rl.Limit(auth.RefreshToken))
}

func AddEventRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, hub *live.Hub) {
	router.GET("/api/events", rl.Limit(events.GetEvents))
	router.GET("/api/events/:eventid", middleware.OptionalAuth(events.GetEvent))
	router.POST("/api/events", middleware.RequireRole("artist", events.CreateEvent))
	router.PUT("/api/events/:eventid", middleware.RequireRole("artist", events.EditEvent))
	router.GET("/api/artist/events", middleware.RequireRole("artist", events.GetMyEvents))

	router.PATCH("/api/events/:eventid/status", middleware.RequireRole("admin", events.UpdateEventStatus))
	router.PATCH("/api/events/:eventid/boost", middleware.RequireRole("admin", events.BoostEvent))
	router.PATCH("/api/events/:eventid/phase", middleware.RequireRole("admin", events.SetPhase(hub)))
}

func AddArtistRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/artists", artists.GetArtists)
	router.GET("/api/artists/:id", middleware.OptionalAuth(artists.GetArtistByID))
	router.POST("/api/artist/register", rl.Limit(middleware.Authenticate(artists.RegisterArtist)))
	router.GET("/api/artist/profile", middleware.Authenticate(artists.GetMyArtistProfile))
	router.GET("/api/user/followed-artists", middleware.Authenticate(artists.GetFollowedArtists))

	router.POST("/api/artists/:id/follow", middleware.Authenticate(artists.FollowArtist))
	router.DELETE("/api/artists/:id/follow", middleware.Authenticate(artists.UnfollowArtist))

	router.POST("/api/artist/verification", rl.Limit(middleware.RequireRole("artist", artists.SubmitVerification)))

	router.PATCH("/api/artists/:id/status", middleware.RequireRole("admin", artists.UpdateArtistStatus))
	router.PATCH("/api/artists/:id/verification", middleware.RequireRole("admin", artists.ReviewVerification))
}

func AddMovieRoutes(router *httprouter.Router) {
	router.GET("/api/movies", movies.GetMovies)
	router.GET("/api/movies/:movieid", movies.GetMovie)
	router.POST("/api/movies", middleware.RequireRole("admin", movies.AddMovie))
}

func AddTicketRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, hub *live.Hub) {
	router.POST("/api/tickets/event/:eventid/claim", rl.Limit(middleware.Authenticate(tickets.ClaimFreeTicket(hub))))
	router.POST("/api/tickets/event/:eventid/payment-session", rl.Limit(middleware.Authenticate(tickets.CreatePaymentSession)))
	router.POST("/api/tickets/event/:eventid/confirm-purchase", rl.Limit(middleware.Authenticate(tickets.ConfirmPurchase(hub))))
	router.GET("/api/tickets/event/:eventid/mine", middleware.Authenticate(tickets.HasTicket))
	router.GET("/api/tickets/event/:eventid/availability", tickets.EventHasSales)
	router.GET("/api/tickets/event/:eventid/print", middleware.Authenticate(tickets.PrintTicket))
	router.GET("/api/tickets/mine", middleware.Authenticate(tickets.MyTickets))
}

func AddAdminRoutes(router *httprouter.Router, hub *live.Hub) {
	router.GET("/api/admin/events", middleware.RequireRole("admin", admin.GetAllEvents))
	router.GET("/api/admin/events/pending", middleware.RequireRole("admin", admin.GetPendingEvents))
	router.GET("/api/admin/artists/pending", middleware.RequireRole("admin", admin.GetPendingArtists))
	router.GET("/api/admin/verifications/pending", middleware.RequireRole("admin", admin.GetPendingVerifications))

	router.GET("/api/app-status", admin.GetAppStatus)
	router.PUT("/api/admin/app-status", middleware.RequireRole("admin", admin.SetAppStatus(hub)))
}

func AddUtilityRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/agi/describe", rl.Limit(middleware.Authenticate(agi.GenerateDescription)))
	router.POST("/api/upload/banner", rl.Limit(middleware.Authenticate(filemgr.UploadBanner)))
	router.POST("/api/upload/photo", rl.Limit(middleware.Authenticate(filemgr.UploadPhoto)))
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())
}

func AddLiveRoutes(router *httprouter.Router, hub *live.Hub) {
	router.GET("/ws/updates", live.WebSocketHandler(hub))
}
