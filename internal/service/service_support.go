package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/rental-blocklist/internal/logger"
	"github.com/MKhiriev/rental-blocklist/internal/store"
	"github.com/MKhiriev/rental-blocklist/internal/validators"
	"github.com/MKhiriev/rental-blocklist/models"
)

// Keywords are matched case-insensitively as substrings, Arabic and English.
var (
	greetingKeywords   = []string{"مرحبا", "السلام", "أهلا", "hello", "hi ", "good morning"}
	helpKeywords       = []string{"مساعدة", "ساعد", "help"}
	escalationKeywords = []string{"مشكلة", "خطأ", "لا يعمل", "problem", "error", "not working", "broken"}
)

var autoResponses = map[models.AutoResponseType]string{
	models.AutoResponseGreeting: "Hello! How can we help you today?",
	models.AutoResponseHelp: "We can help you with:\n• general questions\n• technical problems\n• " +
		"information about the service\n\nWrite your question and we will answer shortly.",
	models.AutoResponseEscalation: "Thank you for your message. Your request was forwarded to the support team " +
		"and you will receive an answer as soon as possible.",
}

const defaultAutoResponse = "Thank you for your message. The support team will reply soon."

// ClassifyMessage picks the automatic reply for a support message. Greeting
// wins over help, help over escalation; anything else gets the default
// escalation reply.
func ClassifyMessage(message string) models.AutoResponse {
	lower := strings.ToLower(message) + " "

	for _, rule := range []struct {
		kind     models.AutoResponseType
		keywords []string
	}{
		{models.AutoResponseGreeting, greetingKeywords},
		{models.AutoResponseHelp, helpKeywords},
		{models.AutoResponseEscalation, escalationKeywords},
	} {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return models.AutoResponse{Type: rule.kind, Message: autoResponses[rule.kind]}
			}
		}
	}

	return models.AutoResponse{Type: models.AutoResponseEscalation, Message: defaultAutoResponse}
}

type supportService struct {
	supportRepository store.SupportRepository
	accountRepository store.AccountRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewSupportService(supportRepository store.SupportRepository, accountRepository store.AccountRepository, validator validators.Validator, logger *logger.Logger) SupportService {
	return &supportService{
		supportRepository: supportRepository,
		accountRepository: accountRepository,
		validator:         validator,
		logger:            logger,
	}
}

// SubmitGuestMessage stores a message from an anonymous visitor.
func (s *supportService) SubmitGuestMessage(ctx context.Context, req models.GuestMessageRequest) (models.SupportMessage, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.SupportMessage{}, err
	}

	message, err := s.supportRepository.CreateMessage(ctx, models.SupportMessage{
		Source:   models.SourceGuest,
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Phone:    strings.TrimSpace(req.Phone),
		Message:  req.Message,
		Priority: models.PriorityNormal,
		Status:   models.StatusUnread,
	})
	if err != nil {
		return models.SupportMessage{}, fmt.Errorf("error saving guest message: %w", err)
	}

	return message, nil
}

// SubmitMessage stores a message from a logged-in account and returns the
// automatic reply.
func (s *supportService) SubmitMessage(ctx context.Context, accountID int64, req models.SupportMessageRequest) (models.SupportMessageResponse, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.SupportMessageResponse{}, err
	}

	account, err := s.accountRepository.FindByID(ctx, accountID)
	if err != nil {
		return models.SupportMessageResponse{}, err
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityNormal
	}

	message, err := s.supportRepository.CreateMessage(ctx, models.SupportMessage{
		Source:    models.SourceAccount,
		AccountID: models.Int64Ptr(account.AccountID),
		Name:      account.Username,
		Phone:     account.PhoneNumber,
		Message:   req.Message,
		Priority:  priority,
		Status:    models.StatusUnread,
	})
	if err != nil {
		return models.SupportMessageResponse{}, fmt.Errorf("error saving support message: %w", err)
	}

	return models.SupportMessageResponse{
		Message:      message,
		AutoResponse: ClassifyMessage(req.Message),
	}, nil
}

func (s *supportService) ListMessages(ctx context.Context, filter models.SupportFilter) ([]models.SupportMessage, error) {
	return s.supportRepository.ListMessages(ctx, filter)
}

func (s *supportService) UpdateStatus(ctx context.Context, messageID int64, req models.StatusUpdateRequest) (models.SupportMessage, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.SupportMessage{}, err
	}

	return s.supportRepository.UpdateStatus(ctx, messageID, req.Status)
}
