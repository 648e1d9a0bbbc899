package utils

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("dateformat", ValidateDateRule)
		v.RegisterValidation("sessiontype", ValidateSessionTypeRule)
		v.RegisterValidation("priority", ValidatePriorityRule)
	}
}

func ValidateDateRule(fl validator.FieldLevel) bool {
	return IsValidDate(fl.Field().String())
}

func ValidateSessionTypeRule(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "work", "break":
		return true
	}
	return false
}

func ValidatePriorityRule(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "low", "medium", "high":
		return true
	}
	return false
}
