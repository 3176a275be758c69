package routes

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/folio/pkg/constant"
	"github.com/folio/pkg/domains/content"
	"github.com/folio/pkg/dtos"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ContentRoutes exposes public reads for every entity and session-gated
// mutations. auth is the configured CheckAuth middleware.
func ContentRoutes(r *gin.RouterGroup, s content.Service, auth gin.HandlerFunc) {
	projects := r.Group("/projects")
	{
		projects.GET("", listProjects(s))
		projects.GET("/:id", getProject(s))
		projects.POST("", auth, createProject(s))
		projects.PUT("/:id", auth, updateProject(s))
		projects.DELETE("/:id", auth, deleteProject(s))
	}

	testimonials := r.Group("/testimonials")
	{
		testimonials.GET("", listTestimonials(s))
		testimonials.GET("/:id", getTestimonial(s))
		testimonials.POST("", auth, createTestimonial(s))
		testimonials.PUT("/:id", auth, updateTestimonial(s))
		testimonials.DELETE("/:id", auth, deleteTestimonial(s))
	}

	skills := r.Group("/skills")
	{
		skills.GET("", listSkills(s))
		skills.GET("/:id", getSkill(s))
		skills.POST("", auth, createSkill(s))
		skills.PUT("/:id", auth, updateSkill(s))
		skills.DELETE("/:id", auth, deleteSkill(s))
	}

	education := r.Group("/education")
	{
		education.GET("", listEducation(s))
		education.GET("/:id", getEducation(s))
		education.POST("", auth, createEducation(s))
		education.PUT("/:id", auth, updateEducation(s))
		education.DELETE("/:id", auth, deleteEducation(s))
	}

	experience := r.Group("/experience")
	{
		experience.GET("", listExperience(s))
		experience.GET("/:id", getExperience(s))
		experience.POST("", auth, createExperience(s))
		experience.PUT("/:id", auth, updateExperience(s))
		experience.DELETE("/:id", auth, deleteExperience(s))
	}

	services := r.Group("/services")
	{
		services.GET("", listServices(s))
		services.GET("/:id", getService(s))
		services.POST("", auth, createService(s))
		services.PUT("/:id", auth, updateService(s))
		services.DELETE("/:id", auth, deleteService(s))
	}

	r.GET("/profile", getProfile(s))
	r.PUT("/profile", auth, updateProfile(s))

	r.GET("/settings", auth, getSettings(s))
	r.PUT("/settings", auth, updateSettings(s))
}

func respondErr(c *gin.Context, err error, entity string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(404, gin.H{"error": fmt.Sprintf(constant.CANT_FIND, entity)})
		return
	}
	c.JSON(500, gin.H{"error": constant.SOMETHING_WENT_WRONG})
}

func listProjects(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		items, err := s.ListProjects(c)
		if err != nil {
			respondErr(c, err, "Projects")
			return
		}
		c.JSON(200, items)
	}
}

func getProject(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		item, err := s.GetProject(c, c.Param("id"))
		if err != nil {
			respondErr(c, err, "Project")
			return
		}
		c.JSON(200, item)
	}
}

func createProject(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.ProjectDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
			return
		}
		item, err := s.CreateProject(c, req)
		if err != nil {
			respondErr(c, err, "Project")
			return
		}
		c.JSON(201, item)
	}
}

func updateProject(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.ProjectDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
			return
		}
		item, err := s.UpdateProject(c, c.Param("id"), req)
		if err != nil {
			respondErr(c, err, "Project")
			return
		}
		c.JSON(200, item)
	}
}

func deleteProject(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		if err := s.DeleteProject(c, c.Param("id")); err != nil {
			respondErr(c, err, "Project")
			return
		}
		c.JSON(200, gin.H{"success": true})
	}
}

func listTestimonials(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		if pageParam := c.Query("page"); pageParam != "" {
			page, err := strconv.Atoi(pageParam)
			if err != nil {
				c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
				return
			}
			items, totalPages, err := s.ListTestimonialsPage(c, page)
			if err != nil {
				c.JSON(400, gin.H{"error": err.Error()})
				return
			}
			c.JSON(200, gin.H{"data": items, "total_pages": totalPages})
			return
		}

		items, err := s.ListTestimonials(c)
		if err != nil {
			respondErr(c, err, "Testimonials")
			return
		}
		c.JSON(200, items)
	}
}

func getTestimonial(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		item, err := s.GetTestimonial(c, c.Param("id"))
		if err != nil {
			respondErr(c, err, "Testimonial")
			return
		}
		c.JSON(200, item)
	}
}

func createTestimonial(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.TestimonialDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
			return
		}
		item, err := s.CreateTestimonial(c, req)
		if err != nil {
			respondErr(c, err, "Testimonial")
			return
		}
		c.JSON(201, item)
	}
}

func updateTestimonial(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.TestimonialDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
			return
		}
		item, err := s.UpdateTestimonial(c, c.Param("id"), req)
		if err != nil {
			respondErr(c, err, "Testimonial")
			return
		}
		c.JSON(200, item)
	}
}

func deleteTestimonial(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		if err := s.DeleteTestimonial(c, c.Param("id")); err != nil {
			respondErr(c, err, "Testimonial")
			return
		}
		c.JSON(200, gin.H{"success": true})
	}
}

func listSkills(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		items, err := s.ListSkills(c)
		if err != nil {
			respondErr(c, err, "Skills")
			return
		}
		c.JSON(200, items)
	}
}

func getSkill(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		item, err := s.GetSkill(c, c.Param("id"))
		if err != nil {
			respondErr(c, err, "Skill")
			return
		}
		c.JSON(200, item)
	}
}

func createSkill(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.SkillDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
			return
		}
		item, err := s.CreateSkill(c, req)
		if err != nil {
			respondErr(c, err, "Skill")
			return
		}
		c.JSON(201, item)
	}
}

func updateSkill(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.SkillDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
			return
		}
		item, err := s.UpdateSkill(c, c.Param("id"), req)
		if err != nil {
			respondErr(c, err, "Skill")
			return
		}
		c.JSON(200, item)
	}
}

func deleteSkill(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		if err := s.DeleteSkill(c, c.Param("id")); err != nil {
			respondErr(c, err, "Skill")
			return
		}
		c.JSON(200, gin.H{"success": true})
	}
}

func listEducation(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		items, err := s.ListEducation(c)
		if err != nil {
			respondErr(c, err, "Education")
			return
		}
		c.JSON(200, items)
	}
}

func getEducation(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		item, err := s.GetEducation(c, c.Param("id"))
		if err != nil {
			respondErr(c, err, "Education")
			return
		}
		c.JSON(200, item)
	}
}

func createEducation(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.EducationDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
			return
		}
		item, err := s.CreateEducation(c, req)
		if err != nil {
			respondErr(c, err, "Education")
			return
		}
		c.JSON(201, item)
	}
}

func updateEducation(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.EducationDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
			return
		}
		item, err := s.UpdateEducation(c, c.Param("id"), req)
		if err != nil {
			respondErr(c, err, "Education")
			return
		}
		c.JSON(200, item)
	}
}

func deleteEducation(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		if err := s.DeleteEducation(c, c.Param("id")); err != nil {
			respondErr(c, err, "Education")
			return
		}
		c.JSON(200, gin.H{"success": true})
	}
}

func listExperience(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		items, err := s.ListExperience(c)
		if err != nil {
			respondErr(c, err, "Experience")
			return
		}
		c.JSON(200, items)
	}
}

func getExperience(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		item, err := s.GetExperience(c, c.Param("id"))
		if err != nil {
			respondErr(c, err, "Experience")
			return
		}
		c.JSON(200, item)
	}
}

func createExperience(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.ExperienceDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
			return
		}
		item, err := s.CreateExperience(c, req)
		if err != nil {
			respondErr(c, err, "Experience")
			return
		}
		c.JSON(201, item)
	}
}

func updateExperience(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.ExperienceDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
			return
		}
		item, err := s.UpdateExperience(c, c.Param("id"), req)
		if err != nil {
			respondErr(c, err, "Experience")
			return
		}
		c.JSON(200, item)
	}
}

func deleteExperience(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		if err := s.DeleteExperience(c, c.Param("id")); err != nil {
			respondErr(c, err, "Experience")
			return
		}
		c.JSON(200, gin.H{"success": true})
	}
}

func listServices(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		items, err := s.ListServices(c)
		if err != nil {
			respondErr(c, err, "Services")
			return
		}
		c.JSON(200, items)
	}
}

func getService(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		item, err := s.GetService(c, c.Param("id"))
		if err != nil {
			respondErr(c, err, "Service")
			return
		}
		c.JSON(200, item)
	}
}

func createService(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.ServiceDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
			return
		}
		item, err := s.CreateService(c, req)
		if err != nil {
			respondErr(c, err, "Service")
			return
		}
		c.JSON(201, item)
	}
}

func updateService(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.ServiceDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
			return
		}
		item, err := s.UpdateService(c, c.Param("id"), req)
		if err != nil {
			respondErr(c, err, "Service")
			return
		}
		c.JSON(200, item)
	}
}

func deleteService(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		if err := s.DeleteService(c, c.Param("id")); err != nil {
			respondErr(c, err, "Service")
			return
		}
		c.JSON(200, gin.H{"success": true})
	}
}

func getProfile(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		item, err := s.GetProfile(c)
		if err != nil {
			respondErr(c, err, "Profile")
			return
		}
		c.JSON(200, item)
	}
}

func updateProfile(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.ProfileDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
			return
		}
		item, err := s.UpdateProfile(c, req)
		if err != nil {
			respondErr(c, err, "Profile")
			return
		}
		c.JSON(200, item)
	}
}

func getSettings(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		item, err := s.GetSettings(c)
		if err != nil {
			respondErr(c, err, "Settings")
			return
		}
		c.JSON(200, item)
	}
}

func updateSettings(s content.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.SiteSettingsDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
			return
		}
		item, err := s.UpdateSettings(c, req)
		if err != nil {
			respondErr(c, err, "Settings")
			return
		}
		c.JSON(200, item)
	}
}
