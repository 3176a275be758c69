package routes

import (
	"net/http"

	"github.com/folio/pkg/constant"
	"github.com/folio/pkg/domains/content"
	"github.com/folio/pkg/entities"
	"github.com/gin-gonic/gin"
)

// PublicPages renders the marketing site from stored content. Display
// filtering only: inactive projects and testimonials are skipped.
func PublicPages(r *gin.Engine, s content.Service) {
	r.GET("/", func(c *gin.Context) {
		settings, _ := s.GetSettings(c)
		if settings.MaintenanceMode {
			c.HTML(http.StatusServiceUnavailable, "maintenance.html", gin.H{
				"settings": settings,
			})
			return
		}

		profile, _ := s.GetProfile(c)
		projects, _ := s.ListProjects(c)
		skills, _ := s.ListSkills(c)
		services, _ := s.ListServices(c)
		education, _ := s.ListEducation(c)
		experience, _ := s.ListExperience(c)
		testimonials, _ := s.ListTestimonials(c)

		c.HTML(http.StatusOK, "index.html", gin.H{
			"profile":      profile,
			"projects":     activeProjects(projects),
			"skills":       groupSkills(skills),
			"services":     servicesWithIcons(services),
			"education":    education,
			"experience":   experience,
			"testimonials": activeTestimonials(testimonials),
			"settings":     settings,
		})
	})
}

// AdminPages renders the admin screens; guard is the redirecting RouteGuard.
func AdminPages(r *gin.Engine, guard gin.HandlerFunc) {
	admin := r.Group("/admin", guard)
	{
		admin.GET("", func(c *gin.Context) {
			c.HTML(http.StatusOK, "admin.html", gin.H{"title": "Dashboard"})
		})
		admin.GET("/login", func(c *gin.Context) {
			c.HTML(http.StatusOK, "login.html", gin.H{"title": "Login"})
		})
		admin.GET("/forgot-password", func(c *gin.Context) {
			c.HTML(http.StatusOK, "forgot_password.html", gin.H{"title": "Forgot Password"})
		})
		admin.GET("/reset-password", func(c *gin.Context) {
			c.HTML(http.StatusOK, "reset_password.html", gin.H{
				"title": "Reset Password",
				"token": c.Query("token"),
				"email": c.Query("email"),
			})
		})
	}
}

func activeProjects(items []entities.Project) []entities.Project {
	out := make([]entities.Project, 0, len(items))
	for _, p := range items {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out
}

func activeTestimonials(items []entities.Testimonial) []entities.Testimonial {
	out := make([]entities.Testimonial, 0, len(items))
	for _, t := range items {
		if t.IsActive {
			out = append(out, t)
		}
	}
	return out
}

type skillGroup struct {
	Category string
	Skills   []entities.Skill
}

// groupSkills buckets skills by category, keeping list order both for the
// groups (first appearance) and within each group.
func groupSkills(items []entities.Skill) []skillGroup {
	index := map[string]int{}
	out := []skillGroup{}
	for _, sk := range items {
		cat := sk.Category
		if cat == "" {
			cat = "General"
		}
		i, ok := index[cat]
		if !ok {
			i = len(out)
			index[cat] = i
			out = append(out, skillGroup{Category: cat})
		}
		out[i].Skills = append(out[i].Skills, sk)
	}
	return out
}

type serviceView struct {
	entities.Service
	IconClass string
}

func servicesWithIcons(items []entities.Service) []serviceView {
	out := make([]serviceView, 0, len(items))
	for _, sv := range items {
		out = append(out, serviceView{Service: sv, IconClass: constant.ResolveIcon(sv.IconKey)})
	}
	return out
}
