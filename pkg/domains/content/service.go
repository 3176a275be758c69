package content

import (
	"context"
	"fmt"
	"log"

	"github.com/folio/pkg/dtos"
	"github.com/folio/pkg/entities"
	"github.com/folio/pkg/state"
	"github.com/folio/pkg/utils"
)

type Service interface {
	ListProjects(ctx context.Context) ([]entities.Project, error)
	GetProject(ctx context.Context, id string) (entities.Project, error)
	CreateProject(ctx context.Context, req dtos.ProjectDTO) (entities.Project, error)
	UpdateProject(ctx context.Context, id string, req dtos.ProjectDTO) (entities.Project, error)
	DeleteProject(ctx context.Context, id string) error

	ListTestimonials(ctx context.Context) ([]entities.Testimonial, error)
	ListTestimonialsPage(ctx context.Context, page int) ([]entities.Testimonial, int, error)
	GetTestimonial(ctx context.Context, id string) (entities.Testimonial, error)
	CreateTestimonial(ctx context.Context, req dtos.TestimonialDTO) (entities.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id string, req dtos.TestimonialDTO) (entities.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id string) error

	ListSkills(ctx context.Context) ([]entities.Skill, error)
	GetSkill(ctx context.Context, id string) (entities.Skill, error)
	CreateSkill(ctx context.Context, req dtos.SkillDTO) (entities.Skill, error)
	UpdateSkill(ctx context.Context, id string, req dtos.SkillDTO) (entities.Skill, error)
	DeleteSkill(ctx context.Context, id string) error

	ListEducation(ctx context.Context) ([]entities.Education, error)
	GetEducation(ctx context.Context, id string) (entities.Education, error)
	CreateEducation(ctx context.Context, req dtos.EducationDTO) (entities.Education, error)
	UpdateEducation(ctx context.Context, id string, req dtos.EducationDTO) (entities.Education, error)
	DeleteEducation(ctx context.Context, id string) error

	ListExperience(ctx context.Context) ([]entities.Experience, error)
	GetExperience(ctx context.Context, id string) (entities.Experience, error)
	CreateExperience(ctx context.Context, req dtos.ExperienceDTO) (entities.Experience, error)
	UpdateExperience(ctx context.Context, id string, req dtos.ExperienceDTO) (entities.Experience, error)
	DeleteExperience(ctx context.Context, id string) error

	ListServices(ctx context.Context) ([]entities.Service, error)
	GetService(ctx context.Context, id string) (entities.Service, error)
	CreateService(ctx context.Context, req dtos.ServiceDTO) (entities.Service, error)
	UpdateService(ctx context.Context, id string, req dtos.ServiceDTO) (entities.Service, error)
	DeleteService(ctx context.Context, id string) error

	GetProfile(ctx context.Context) (entities.Profile, error)
	UpdateProfile(ctx context.Context, req dtos.ProfileDTO) (entities.Profile, error)

	GetSettings(ctx context.Context) (entities.SiteSettings, error)
	UpdateSettings(ctx context.Context, req dtos.SiteSettingsDTO) (entities.SiteSettings, error)
}

type service struct {
	repository Repository
}

func NewService(r Repository) Service {
	return &service{
		repository: r,
	}
}

// audit notes who changed what. Mutations are session-gated, so the user id
// in the context is the acting administrator.
func audit(ctx context.Context, action, entity, id string) {
	actor := state.CurrentEmail(ctx)
	if actor == "" {
		actor = fmt.Sprintf("user %d", state.CurrentUser(ctx))
	}
	if id == "" {
		log.Printf("[info] %s %s by %s", entity, action, actor)
		return
	}
	log.Printf("[info] %s %s %s by %s", entity, id, action, actor)
}

func applyProject(p *entities.Project, req dtos.ProjectDTO) {
	p.Title = req.Title
	p.Category = req.Category
	if len(req.Categories) > 0 {
		p.Categories = entities.StringList(req.Categories)
	} else if req.Category != "" {
		p.Categories = entities.StringList{req.Category}
	}
	p.Description = req.Description
	p.ImageURL = req.ImageURL
	p.WebpURL = req.WebpURL
	p.DemoURL = req.DemoURL
	p.GithubURL = req.GithubURL
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	p.Order = req.Order
}

func (s *service) ListProjects(ctx context.Context) ([]entities.Project, error) {
	return s.repository.ListProjects(ctx)
}

func (s *service) GetProject(ctx context.Context, id string) (entities.Project, error) {
	return s.repository.GetProject(ctx, id)
}

func (s *service) CreateProject(ctx context.Context, req dtos.ProjectDTO) (entities.Project, error) {
	item := entities.Project{IsActive: true}
	applyProject(&item, req)
	if err := s.repository.CreateProject(ctx, &item); err != nil {
		return item, err
	}
	audit(ctx, "created", "project", item.ID)
	return item, nil
}

func (s *service) UpdateProject(ctx context.Context, id string, req dtos.ProjectDTO) (entities.Project, error) {
	item, err := s.repository.GetProject(ctx, id)
	if err != nil {
		return item, err
	}
	applyProject(&item, req)
	err = s.repository.SaveProject(ctx, &item)
	return item, err
}

func (s *service) DeleteProject(ctx context.Context, id string) error {
	if err := s.repository.DeleteProject(ctx, id); err != nil {
		return err
	}
	audit(ctx, "deleted", "project", id)
	return nil
}

func applyTestimonial(t *entities.Testimonial, req dtos.TestimonialDTO) {
	t.Name = req.Name
	t.Role = req.Role
	t.Company = req.Company
	t.Text = req.Text
	t.LinkedinURL = req.LinkedinURL
	t.AvatarURL = req.AvatarURL
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}
}

func (s *service) ListTestimonials(ctx context.Context) ([]entities.Testimonial, error) {
	return s.repository.ListTestimonials(ctx)
}

func (s *service) ListTestimonialsPage(ctx context.Context, page int) ([]entities.Testimonial, int, error) {
	return s.repository.ListTestimonialsPage(ctx, page)
}

func (s *service) GetTestimonial(ctx context.Context, id string) (entities.Testimonial, error) {
	return s.repository.GetTestimonial(ctx, id)
}

func (s *service) CreateTestimonial(ctx context.Context, req dtos.TestimonialDTO) (entities.Testimonial, error) {
	item := entities.Testimonial{IsActive: true}
	applyTestimonial(&item, req)
	if err := s.repository.CreateTestimonial(ctx, &item); err != nil {
		return item, err
	}
	audit(ctx, "created", "testimonial", item.ID)
	return item, nil
}

func (s *service) UpdateTestimonial(ctx context.Context, id string, req dtos.TestimonialDTO) (entities.Testimonial, error) {
	item, err := s.repository.GetTestimonial(ctx, id)
	if err != nil {
		return item, err
	}
	applyTestimonial(&item, req)
	err = s.repository.SaveTestimonial(ctx, &item)
	return item, err
}

func (s *service) DeleteTestimonial(ctx context.Context, id string) error {
	if err := s.repository.DeleteTestimonial(ctx, id); err != nil {
		return err
	}
	audit(ctx, "deleted", "testimonial", id)
	return nil
}

func applySkill(sk *entities.Skill, req dtos.SkillDTO) {
	sk.Name = req.Name
	if req.Percentage != nil {
		sk.Percentage = utils.ClampPercentage(*req.Percentage)
	}
	sk.Category = req.Category
	sk.IconURL = req.IconURL
	sk.Order = req.Order
}

func (s *service) ListSkills(ctx context.Context) ([]entities.Skill, error) {
	return s.repository.ListSkills(ctx)
}

func (s *service) GetSkill(ctx context.Context, id string) (entities.Skill, error) {
	return s.repository.GetSkill(ctx, id)
}

func (s *service) CreateSkill(ctx context.Context, req dtos.SkillDTO) (entities.Skill, error) {
	item := entities.Skill{Percentage: 75}
	applySkill(&item, req)
	if err := s.repository.CreateSkill(ctx, &item); err != nil {
		return item, err
	}
	audit(ctx, "created", "skill", item.ID)
	return item, nil
}

func (s *service) UpdateSkill(ctx context.Context, id string, req dtos.SkillDTO) (entities.Skill, error) {
	item, err := s.repository.GetSkill(ctx, id)
	if err != nil {
		return item, err
	}
	applySkill(&item, req)
	err = s.repository.SaveSkill(ctx, &item)
	return item, err
}

func (s *service) DeleteSkill(ctx context.Context, id string) error {
	if err := s.repository.DeleteSkill(ctx, id); err != nil {
		return err
	}
	audit(ctx, "deleted", "skill", id)
	return nil
}

func applyEducation(e *entities.Education, req dtos.EducationDTO) {
	e.Institution = req.Institution
	e.Degree = req.Degree
	e.Field = req.Field
	e.StartDate = req.StartDate
	e.EndDate = req.EndDate
	e.Order = req.Order
}

func (s *service) ListEducation(ctx context.Context) ([]entities.Education, error) {
	return s.repository.ListEducation(ctx)
}

func (s *service) GetEducation(ctx context.Context, id string) (entities.Education, error) {
	return s.repository.GetEducation(ctx, id)
}

func (s *service) CreateEducation(ctx context.Context, req dtos.EducationDTO) (entities.Education, error) {
	var item entities.Education
	applyEducation(&item, req)
	if err := s.repository.CreateEducation(ctx, &item); err != nil {
		return item, err
	}
	audit(ctx, "created", "education", item.ID)
	return item, nil
}

func (s *service) UpdateEducation(ctx context.Context, id string, req dtos.EducationDTO) (entities.Education, error) {
	item, err := s.repository.GetEducation(ctx, id)
	if err != nil {
		return item, err
	}
	applyEducation(&item, req)
	err = s.repository.SaveEducation(ctx, &item)
	return item, err
}

func (s *service) DeleteEducation(ctx context.Context, id string) error {
	if err := s.repository.DeleteEducation(ctx, id); err != nil {
		return err
	}
	audit(ctx, "deleted", "education", id)
	return nil
}

func applyExperience(e *entities.Experience, req dtos.ExperienceDTO) {
	e.JobTitle = req.JobTitle
	e.Company = req.Company
	e.StartDate = req.StartDate
	e.EndDate = req.EndDate
	e.Description = req.Description
	e.Order = req.Order
}

func (s *service) ListExperience(ctx context.Context) ([]entities.Experience, error) {
	return s.repository.ListExperience(ctx)
}

func (s *service) GetExperience(ctx context.Context, id string) (entities.Experience, error) {
	return s.repository.GetExperience(ctx, id)
}

func (s *service) CreateExperience(ctx context.Context, req dtos.ExperienceDTO) (entities.Experience, error) {
	var item entities.Experience
	applyExperience(&item, req)
	if err := s.repository.CreateExperience(ctx, &item); err != nil {
		return item, err
	}
	audit(ctx, "created", "experience", item.ID)
	return item, nil
}

func (s *service) UpdateExperience(ctx context.Context, id string, req dtos.ExperienceDTO) (entities.Experience, error) {
	item, err := s.repository.GetExperience(ctx, id)
	if err != nil {
		return item, err
	}
	applyExperience(&item, req)
	err = s.repository.SaveExperience(ctx, &item)
	return item, err
}

func (s *service) DeleteExperience(ctx context.Context, id string) error {
	if err := s.repository.DeleteExperience(ctx, id); err != nil {
		return err
	}
	audit(ctx, "deleted", "experience", id)
	return nil
}

func applyService(sv *entities.Service, req dtos.ServiceDTO) {
	sv.Title = req.Title
	sv.Description = req.Description
	sv.IconKey = req.IconKey
	sv.Order = req.Order
}

func (s *service) ListServices(ctx context.Context) ([]entities.Service, error) {
	return s.repository.ListServices(ctx)
}

func (s *service) GetService(ctx context.Context, id string) (entities.Service, error) {
	return s.repository.GetService(ctx, id)
}

func (s *service) CreateService(ctx context.Context, req dtos.ServiceDTO) (entities.Service, error) {
	var item entities.Service
	applyService(&item, req)
	if err := s.repository.CreateService(ctx, &item); err != nil {
		return item, err
	}
	audit(ctx, "created", "service", item.ID)
	return item, nil
}

func (s *service) UpdateService(ctx context.Context, id string, req dtos.ServiceDTO) (entities.Service, error) {
	item, err := s.repository.GetService(ctx, id)
	if err != nil {
		return item, err
	}
	applyService(&item, req)
	err = s.repository.SaveService(ctx, &item)
	return item, err
}

func (s *service) DeleteService(ctx context.Context, id string) error {
	if err := s.repository.DeleteService(ctx, id); err != nil {
		return err
	}
	audit(ctx, "deleted", "service", id)
	return nil
}

func (s *service) GetProfile(ctx context.Context) (entities.Profile, error) {
	return s.repository.GetProfile(ctx)
}

// UpdateProfile replaces the single profile row, creating it when missing.
func (s *service) UpdateProfile(ctx context.Context, req dtos.ProfileDTO) (entities.Profile, error) {
	item, err := s.repository.GetProfile(ctx)
	if err != nil {
		item = entities.Profile{}
	}
	item.Name = req.Name
	item.Title = req.Title
	item.Email = req.Email
	item.Phone = req.Phone
	item.AltPhone = req.AltPhone
	item.Location = req.Location
	item.Bio = req.Bio
	item.AvatarURL = req.AvatarURL
	item.Github = req.Github
	item.Linkedin = req.Linkedin
	item.Whatsapp = req.Whatsapp
	item.CvURL = req.CvURL
	if err = s.repository.SaveProfile(ctx, &item); err != nil {
		return item, err
	}
	audit(ctx, "updated", "profile", "")
	return item, nil
}

func (s *service) GetSettings(ctx context.Context) (entities.SiteSettings, error) {
	return s.repository.GetSettings(ctx)
}

func (s *service) UpdateSettings(ctx context.Context, req dtos.SiteSettingsDTO) (entities.SiteSettings, error) {
	item, err := s.repository.GetSettings(ctx)
	if err != nil {
		item = entities.SiteSettings{}
	}
	item.SiteTitle = req.SiteTitle
	item.MetaDescription = req.MetaDescription
	item.GoogleAnalyticsID = req.GoogleAnalyticsID
	if req.MaintenanceMode != nil {
		item.MaintenanceMode = *req.MaintenanceMode
	}
	if err = s.repository.SaveSettings(ctx, &item); err != nil {
		return item, err
	}
	audit(ctx, "updated", "settings", "")
	return item, nil
}
