package validation

import (
	"strconv"
	"strings"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/core/domain"
	"tasktracker/pkg/apierrors"
)

// BuildTaskInput runs every field rule over the submitted form and, when the
// five due components are each in range, assembles them into the due date.
// Rejections come back as apierrors.ValidationErrs with translated messages.
func BuildTaskInput(form dto.TaskForm, lang string) (domain.TaskInput, error) {
	values := map[string]string{
		ParamTitle:       strings.TrimSpace(form.Title),
		ParamDescription: strings.TrimSpace(form.Description),
		ParamStatus:      strings.TrimSpace(form.Status),
		ParamDueDay:      strings.TrimSpace(form.DueDay),
		ParamDueMonth:    strings.TrimSpace(form.DueMonth),
		ParamDueYear:     strings.TrimSpace(form.DueYear),
		ParamDueHour:     strings.TrimSpace(form.DueHour),
		ParamDueMinutes:  strings.TrimSpace(form.DueMinutes),
	}

	var errs []apierrors.FieldError
	dueFieldsValid := true
	for _, field := range taskRules {
		for _, messageID := range field.run(values[field.param]) {
			errs = append(errs, bodyError(field.param, messageID, lang))
			if isDueParam(field.param) {
				dueFieldsValid = false
			}
		}
	}

	var input domain.TaskInput
	if dueFieldsValid {
		due, err := domain.AssembleDue(dueParts(values))
		if err != nil {
			errs = append(errs, bodyError(ParamDue, MsgDueInvalid, lang))
		}
		input.Due = due
	}

	if len(errs) > 0 {
		return domain.TaskInput{}, apierrors.ValidationErrs{Errors: errs}
	}

	input.Title = values[ParamTitle]
	input.Status = domain.NormalizeTaskStatus(values[ParamStatus])
	if description := values[ParamDescription]; description != "" {
		input.Description = &description
	}
	return input, nil
}

// ParseTaskID accepts positive integer path ids only.
func ParseTaskID(raw string, lang string) (uint64, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, apierrors.ValidationErrs{Errors: []apierrors.FieldError{{
			Msg:      apierrors.GetTransErrorMsg(apierrors.MsgInvalidTaskID, lang),
			Param:    ParamTaskID,
			Location: apierrors.LocationParams,
		}}}
	}
	return id, nil
}

func bodyError(param, messageID, lang string) apierrors.FieldError {
	return apierrors.FieldError{
		Msg:      apierrors.GetTransErrorMsg(messageID, lang),
		Param:    param,
		Location: apierrors.LocationBody,
	}
}

func isDueParam(param string) bool {
	switch param {
	case ParamDueDay, ParamDueMonth, ParamDueYear, ParamDueHour, ParamDueMinutes:
		return true
	}
	return false
}

// dueParts is only called once every component passed its integer rule.
func dueParts(values map[string]string) domain.DueParts {
	atoi := func(param string) int {
		n, _ := strconv.Atoi(values[param])
		return n
	}
	return domain.DueParts{
		Day:    atoi(ParamDueDay),
		Month:  atoi(ParamDueMonth),
		Year:   atoi(ParamDueYear),
		Hour:   atoi(ParamDueHour),
		Minute: atoi(ParamDueMinutes),
	}
}
