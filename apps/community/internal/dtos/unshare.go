package dtos

import (
	"github.com/google/uuid"
	"github.com/xdoubleu/essentia/v2/pkg/validate"
)

type UnshareDto struct {
	ID      string `schema:"-"`
	Confirm bool   `schema:"confirm"`
}

func (dto *UnshareDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "id", dto.ID, validate.IsNotEmpty)

	errs := map[string]string{}
	for key, value := range v.Errors() {
		errs[key] = value
	}
	if _, err := uuid.Parse(dto.ID); dto.ID != "" && err != nil {
		errs["id"] = "must be a valid uuid"
	}

	return len(errs) == 0, errs
}
