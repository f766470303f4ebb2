package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"gamehub-be/internal/apperrors"
	"gamehub-be/internal/cache"
	"gamehub-be/internal/completion"
	"gamehub-be/internal/entities"
	"gamehub-be/internal/repository"
)

const (
	maxReplyTokens   = 200
	replyTemperature = 0.7

	catalogCacheKey = "games:catalog"
	catalogCacheTTL = 5 * time.Minute

	// Returned without calling the completion service when the catalog
	// is empty, so an empty store gives a deterministic answer.
	emptyCatalogReply = "There are no games available in the store right now. Please check back later!"

	recommendSystemPrompt = "You are a game recommendation assistant for GameHub, an online game store. " +
		"Only recommend games from the list provided in the user's message. " +
		"Keep your reply short and friendly."

	supportSystemPrompt = "You are a customer support agent for GameHub, an online game store. " +
		"Help users with questions about their account, purchases, and games. " +
		"Be polite and concise."
)

// ChatService defines the interface for the recommendation and support endpoints
type ChatService interface {
	Recommend(ctx context.Context, userMessage string) (string, error)
	Support(ctx context.Context, message string) (string, error)
}

type chatService struct {
	gameRepo    repository.GameRepository
	completions completion.Client
	cache       cache.Cache
	model       string
}

// NewChatService creates a new chat service. cacheClient may be nil;
// the catalog is then read from the database on every request.
func NewChatService(gameRepo repository.GameRepository, completions completion.Client, cacheClient cache.Cache, model string) ChatService {
	return &chatService{
		gameRepo:    gameRepo,
		completions: completions,
		cache:       cacheClient,
		model:       model,
	}
}

// formatCatalog renders the game list into the text block embedded in
// the prompt. Line order follows query order, so the block is
// deterministic for a given catalog state.
func formatCatalog(games []*entities.Game) string {
	var b strings.Builder
	for i, game := range games {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "- %s (%s) - $%.2f", game.Name, game.Genre, game.Price)
	}
	return b.String()
}

// catalogBlock returns the formatted catalog, using the cache when one
// is configured. Only non-empty blocks are cached so an empty catalog
// is always re-checked against the database.
func (s *chatService) catalogBlock(ctx context.Context) (string, error) {
	if s.cache != nil {
		if block, err := s.cache.Get(ctx, catalogCacheKey); err == nil && block != "" {
			return block, nil
		}
	}

	games, err := s.gameRepo.ListAll(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read game catalog: %w", err)
	}

	block := formatCatalog(games)
	if s.cache != nil && block != "" {
		if err := s.cache.Set(ctx, catalogCacheKey, block, catalogCacheTTL); err != nil {
			log.Printf("Warning: failed to cache game catalog: %v", err)
		}
	}

	return block, nil
}

// Recommend forwards the user's preferences plus the current catalog to
// the completion service, constrained to recommend only listed games.
func (s *chatService) Recommend(ctx context.Context, userMessage string) (string, error) {
	block, err := s.catalogBlock(ctx)
	if err != nil {
		return "", err
	}

	if block == "" {
		return emptyCatalogReply, nil
	}

	req := &completion.Request{
		Model: s.model,
		Messages: []completion.Message{
			{Role: "system", Content: recommendSystemPrompt},
			{Role: "user", Content: fmt.Sprintf("%s\n\nAvailable games:\n%s", userMessage, block)},
		},
		MaxTokens:   maxReplyTokens,
		Temperature: replyTemperature,
	}

	reply, err := s.completions.CreateChatCompletion(ctx, req)
	if err != nil {
		log.Printf("ERROR: recommendation completion failed: %v", err)
		return "", apperrors.ErrGateway
	}

	return reply, nil
}

// Support forwards the user's message to the completion service under
// the support persona. No catalog augmentation.
func (s *chatService) Support(ctx context.Context, message string) (string, error) {
	req := &completion.Request{
		Model: s.model,
		Messages: []completion.Message{
			{Role: "system", Content: supportSystemPrompt},
			{Role: "user", Content: message},
		},
		MaxTokens:   maxReplyTokens,
		Temperature: replyTemperature,
	}

	reply, err := s.completions.CreateChatCompletion(ctx, req)
	if err != nil {
		log.Printf("ERROR: support completion failed: %v", err)
		return "", apperrors.ErrGateway
	}

	return reply, nil
}
