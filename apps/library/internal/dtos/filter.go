package dtos

import (
	"github.com/xdoubleu/essentia/v2/pkg/validate"
	"readinglog.xdoubleu.com/apps/library/internal/models"
)

type FilterDto struct {
	Status string `json:"status"`
}

func (dto *FilterDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "status", dto.Status, validate.IsInSlice(models.FilterSlugs()))

	return v.Valid(), v.Errors()
}

// Filter must only be called on a validated dto.
func (dto *FilterDto) Filter() models.Filter {
	filter, err := models.ParseFilter(dto.Status)
	if err != nil {
		panic(err)
	}
	return filter
}
