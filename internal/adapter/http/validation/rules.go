package validation

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"tasktracker/internal/core/domain"
)

const (
	ParamTitle       = "title"
	ParamDescription = "description"
	ParamStatus      = "status"
	ParamDueDay      = "due-day"
	ParamDueMonth    = "due-month"
	ParamDueYear     = "due-year"
	ParamDueHour     = "due-hour"
	ParamDueMinutes  = "due-minutes"
	ParamDue         = "due"
	ParamTaskID      = "taskId"
)

// Message ids, resolved through the translator.
const (
	MsgTitleLength        = "titleLength"
	MsgDescriptionLength  = "descriptionLength"
	MsgStatusInvalid      = "statusInvalid"
	MsgDueDayRequired     = "dueDayRequired"
	MsgDueDayRange        = "dueDayRange"
	MsgDueMonthRequired   = "dueMonthRequired"
	MsgDueMonthRange      = "dueMonthRange"
	MsgDueYearRequired    = "dueYearRequired"
	MsgDueYearRange       = "dueYearRange"
	MsgDueHourRequired    = "dueHourRequired"
	MsgDueHourRange       = "dueHourRange"
	MsgDueMinutesRequired = "dueMinutesRequired"
	MsgDueMinutesRange    = "dueMinutesRange"
	MsgDueInvalid         = "dueInvalid"
)

var validate = validator.New()

type check func(value string) bool

type rule struct {
	check     check
	messageID string
}

// fieldRules is the ordered pipeline of one field. With bail set the
// pipeline stops at its first failure.
type fieldRules struct {
	param    string
	optional bool
	bail     bool
	rules    []rule
}

// tag checks the trimmed string value against a validator tag.
func tag(t string) check {
	return func(value string) bool {
		return validate.Var(value, t) == nil
	}
}

// intTag checks that the value is an integer satisfying the validator tag.
func intTag(t string) check {
	return func(value string) bool {
		n, err := strconv.Atoi(value)
		if err != nil {
			return false
		}
		return validate.Var(n, t) == nil
	}
}

func statusTag() check {
	allowed := make([]string, 0, len(domain.TaskStatuses))
	for _, s := range domain.TaskStatuses {
		allowed = append(allowed, string(s))
	}
	oneOf := tag("required,oneof=" + strings.Join(allowed, " "))
	return func(value string) bool {
		return oneOf(string(domain.NormalizeTaskStatus(value)))
	}
}

func dueRules(param string, min, max int, requiredID, rangeID string) fieldRules {
	return fieldRules{
		param: param,
		bail:  true,
		rules: []rule{
			{check: tag("required"), messageID: requiredID},
			{check: intTag("gte=" + strconv.Itoa(min) + ",lte=" + strconv.Itoa(max)), messageID: rangeID},
		},
	}
}

var taskRules = []fieldRules{
	{
		param: ParamTitle,
		rules: []rule{
			{check: tag("min=" + strconv.Itoa(domain.TitleMinLength)), messageID: MsgTitleLength},
			{check: tag("max=" + strconv.Itoa(domain.TitleMaxLength)), messageID: MsgTitleLength},
		},
	},
	{
		param:    ParamDescription,
		optional: true,
		rules: []rule{
			{check: tag("max=" + strconv.Itoa(domain.DescriptionMaxLength)), messageID: MsgDescriptionLength},
		},
	},
	{
		param: ParamStatus,
		rules: []rule{
			{check: statusTag(), messageID: MsgStatusInvalid},
		},
	},
	dueRules(ParamDueDay, domain.DueDayMin, domain.DueDayMax, MsgDueDayRequired, MsgDueDayRange),
	dueRules(ParamDueMonth, domain.DueMonthMin, domain.DueMonthMax, MsgDueMonthRequired, MsgDueMonthRange),
	dueRules(ParamDueYear, domain.DueYearMin, domain.DueYearMax, MsgDueYearRequired, MsgDueYearRange),
	dueRules(ParamDueHour, domain.DueHourMin, domain.DueHourMax, MsgDueHourRequired, MsgDueHourRange),
	dueRules(ParamDueMinutes, domain.DueMinuteMin, domain.DueMinuteMax, MsgDueMinutesRequired, MsgDueMinutesRange),
}

// run applies the pipeline and returns the message ids of failed rules.
func (f fieldRules) run(value string) []string {
	if f.optional && value == "" {
		return nil
	}
	var failed []string
	for _, r := range f.rules {
		if r.check(value) {
			continue
		}
		failed = append(failed, r.messageID)
		if f.bail {
			break
		}
	}
	return failed
}
