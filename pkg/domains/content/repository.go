package content

import (
	"context"

	"github.com/folio/pkg/entities"
	"github.com/folio/pkg/utils"
	"gorm.io/gorm"
)

type Repository interface {
	ListProjects(ctx context.Context) ([]entities.Project, error)
	GetProject(ctx context.Context, id string) (entities.Project, error)
	CreateProject(ctx context.Context, p *entities.Project) error
	SaveProject(ctx context.Context, p *entities.Project) error
	DeleteProject(ctx context.Context, id string) error

	ListTestimonials(ctx context.Context) ([]entities.Testimonial, error)
	ListTestimonialsPage(ctx context.Context, page int) ([]entities.Testimonial, int, error)
	GetTestimonial(ctx context.Context, id string) (entities.Testimonial, error)
	CreateTestimonial(ctx context.Context, t *entities.Testimonial) error
	SaveTestimonial(ctx context.Context, t *entities.Testimonial) error
	DeleteTestimonial(ctx context.Context, id string) error

	ListSkills(ctx context.Context) ([]entities.Skill, error)
	GetSkill(ctx context.Context, id string) (entities.Skill, error)
	CreateSkill(ctx context.Context, s *entities.Skill) error
	SaveSkill(ctx context.Context, s *entities.Skill) error
	DeleteSkill(ctx context.Context, id string) error

	ListEducation(ctx context.Context) ([]entities.Education, error)
	GetEducation(ctx context.Context, id string) (entities.Education, error)
	CreateEducation(ctx context.Context, e *entities.Education) error
	SaveEducation(ctx context.Context, e *entities.Education) error
	DeleteEducation(ctx context.Context, id string) error

	ListExperience(ctx context.Context) ([]entities.Experience, error)
	GetExperience(ctx context.Context, id string) (entities.Experience, error)
	CreateExperience(ctx context.Context, e *entities.Experience) error
	SaveExperience(ctx context.Context, e *entities.Experience) error
	DeleteExperience(ctx context.Context, id string) error

	ListServices(ctx context.Context) ([]entities.Service, error)
	GetService(ctx context.Context, id string) (entities.Service, error)
	CreateService(ctx context.Context, s *entities.Service) error
	SaveService(ctx context.Context, s *entities.Service) error
	DeleteService(ctx context.Context, id string) error

	GetProfile(ctx context.Context) (entities.Profile, error)
	SaveProfile(ctx context.Context, p *entities.Profile) error

	GetSettings(ctx context.Context) (entities.SiteSettings, error)
	SaveSettings(ctx context.Context, s *entities.SiteSettings) error
}

type repository struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

// deleteByID removes one row and reports gorm.ErrRecordNotFound when the id
// did not match anything.
func (r *repository) deleteByID(ctx context.Context, model interface{}, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ListProjects(ctx context.Context) ([]entities.Project, error) {
	var items []entities.Project
	err := r.db.WithContext(ctx).Order("display_order asc").Find(&items).Error
	return items, err
}

func (r *repository) GetProject(ctx context.Context, id string) (entities.Project, error) {
	var item entities.Project
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	return item, err
}

func (r *repository) CreateProject(ctx context.Context, p *entities.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) SaveProject(ctx context.Context, p *entities.Project) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) DeleteProject(ctx context.Context, id string) error {
	return r.deleteByID(ctx, &entities.Project{}, id)
}

func (r *repository) ListTestimonials(ctx context.Context) ([]entities.Testimonial, error) {
	var items []entities.Testimonial
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&items).Error
	return items, err
}

func (r *repository) ListTestimonialsPage(ctx context.Context, page int) ([]entities.Testimonial, int, error) {
	var items []entities.Testimonial
	totalPages, err := utils.Pagination(&items, page, r.db.Order("created_at desc"), ctx, "1 = 1")
	return items, totalPages, err
}

func (r *repository) GetTestimonial(ctx context.Context, id string) (entities.Testimonial, error) {
	var item entities.Testimonial
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	return item, err
}

func (r *repository) CreateTestimonial(ctx context.Context, t *entities.Testimonial) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) SaveTestimonial(ctx context.Context, t *entities.Testimonial) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) DeleteTestimonial(ctx context.Context, id string) error {
	return r.deleteByID(ctx, &entities.Testimonial{}, id)
}

func (r *repository) ListSkills(ctx context.Context) ([]entities.Skill, error) {
	var items []entities.Skill
	err := r.db.WithContext(ctx).Order("display_order asc").Find(&items).Error
	return items, err
}

func (r *repository) GetSkill(ctx context.Context, id string) (entities.Skill, error) {
	var item entities.Skill
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	return item, err
}

func (r *repository) CreateSkill(ctx context.Context, s *entities.Skill) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) SaveSkill(ctx context.Context, s *entities.Skill) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) DeleteSkill(ctx context.Context, id string) error {
	return r.deleteByID(ctx, &entities.Skill{}, id)
}

func (r *repository) ListEducation(ctx context.Context) ([]entities.Education, error) {
	var items []entities.Education
	err := r.db.WithContext(ctx).Order("display_order asc").Find(&items).Error
	return items, err
}

func (r *repository) GetEducation(ctx context.Context, id string) (entities.Education, error) {
	var item entities.Education
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	return item, err
}

func (r *repository) CreateEducation(ctx context.Context, e *entities.Education) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) SaveEducation(ctx context.Context, e *entities.Education) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) DeleteEducation(ctx context.Context, id string) error {
	return r.deleteByID(ctx, &entities.Education{}, id)
}

func (r *repository) ListExperience(ctx context.Context) ([]entities.Experience, error) {
	var items []entities.Experience
	err := r.db.WithContext(ctx).Order("display_order asc").Find(&items).Error
	return items, err
}

func (r *repository) GetExperience(ctx context.Context, id string) (entities.Experience, error) {
	var item entities.Experience
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	return item, err
}

func (r *repository) CreateExperience(ctx context.Context, e *entities.Experience) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) SaveExperience(ctx context.Context, e *entities.Experience) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) DeleteExperience(ctx context.Context, id string) error {
	return r.deleteByID(ctx, &entities.Experience{}, id)
}

func (r *repository) ListServices(ctx context.Context) ([]entities.Service, error) {
	var items []entities.Service
	err := r.db.WithContext(ctx).Order("display_order asc").Find(&items).Error
	return items, err
}

func (r *repository) GetService(ctx context.Context, id string) (entities.Service, error) {
	var item entities.Service
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	return item, err
}

func (r *repository) CreateService(ctx context.Context, s *entities.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) SaveService(ctx context.Context, s *entities.Service) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) DeleteService(ctx context.Context, id string) error {
	return r.deleteByID(ctx, &entities.Service{}, id)
}

func (r *repository) GetProfile(ctx context.Context) (entities.Profile, error) {
	var item entities.Profile
	err := r.db.WithContext(ctx).First(&item).Error
	return item, err
}

func (r *repository) SaveProfile(ctx context.Context, p *entities.Profile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) GetSettings(ctx context.Context) (entities.SiteSettings, error) {
	var item entities.SiteSettings
	err := r.db.WithContext(ctx).First(&item).Error
	return item, err
}

func (r *repository) SaveSettings(ctx context.Context, s *entities.SiteSettings) error {
	return r.db.WithContext(ctx).Save(s).Error
}
