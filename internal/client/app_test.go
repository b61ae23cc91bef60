// SPDX-License-Identifier: Apache-2.0

package client

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ameledin/go-note-vault/internal/config"
	"github.com/ameledin/go-note-vault/internal/crypto"
	"github.com/ameledin/go-note-vault/internal/logger"
	"github.com/ameledin/go-note-vault/internal/mock"
	"github.com/ameledin/go-note-vault/internal/service"
	"github.com/ameledin/go-note-vault/internal/store"
	"github.com/ameledin/go-note-vault/models"
)

type appMocks struct {
	repo    *mock.MockNoteRepository
	engine  *mock.MockEncryptionEngine
	scorer  *mock.MockPasswordStrengthScorer
	gateway *mock.MockAIGateway
}

func newTestApp(t *testing.T, ctrl *gomock.Controller) (*App, *bytes.Buffer, appMocks) {
	t.Helper()

	m := appMocks{
		repo:    mock.NewMockNoteRepository(ctrl),
		engine:  mock.NewMockEncryptionEngine(ctrl),
		scorer:  mock.NewMockPasswordStrengthScorer(ctrl),
		gateway: mock.NewMockAIGateway(ctrl),
	}

	svcs := &service.Services{
		NoteService: service.NewNoteService(m.repo, m.engine, m.scorer, logger.Nop()),
		AIService:   service.NewAIService(m.repo, m.gateway, config.AI{}, logger.Nop()),
	}

	out := &bytes.Buffer{}
	return NewApp(svcs, logger.Nop(), out), out, m
}

func TestApp_UnknownCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, out, _ := newTestApp(t, ctrl)

	err := app.Run(context.Background(), []string{"frobnicate"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
	assert.Contains(t, out.String(), "Usage:")
}

func TestApp_NoArgsPrintsUsage(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, out, _ := newTestApp(t, ctrl)

	err := app.Run(context.Background(), nil)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Usage:")
}

func TestApp_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, out, m := newTestApp(t, ctrl)
	ctx := context.Background()

	m.repo.EXPECT().GetAllNotes(ctx, store.NoteFilter{Category: "work"}).
		Return([]models.Note{
			{ID: "id-1", Title: "standup notes"},
			{ID: "id-2", Title: "retro" + models.EncryptedTitleSuffix, IsEncrypted: true},
		}, nil)

	err := app.Run(ctx, []string{"list", "work"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "standup notes")
	assert.Contains(t, out.String(), "id-2")
}

func TestApp_Show(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, out, m := newTestApp(t, ctrl)
	ctx := context.Background()

	m.repo.EXPECT().GetNote(ctx, "id-1").Return(models.Note{
		ID:      "id-1",
		Title:   "standup notes",
		Content: "discussed the release",
		Tags:    []string{"work"},
	}, nil)

	err := app.Run(ctx, []string{"show", "id-1"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "standup notes")
	assert.Contains(t, out.String(), "discussed the release")
}

func TestApp_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, out, m := newTestApp(t, ctrl)
	ctx := context.Background()

	m.repo.EXPECT().SaveNote(ctx, gomock.Any()).Return(nil)

	err := app.Run(ctx, []string{"create", "title", "content", "work"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "created note")
}

func TestApp_Assess(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, out, m := newTestApp(t, ctrl)

	m.scorer.EXPECT().Score("abc").Return(models.PasswordStrengthAssessment{
		Score:    1,
		Feedback: []string{"Use at least 8 characters"},
	})

	err := app.Run(context.Background(), []string{"assess", "abc"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "strength 1/6")
	assert.Contains(t, out.String(), "Use at least 8 characters")
}

func TestApp_Decrypt_WrongPasswordSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, _, m := newTestApp(t, ctrl)
	ctx := context.Background()

	enc := models.Note{
		ID:          "id-1",
		IsEncrypted: true,
		EncryptionData: &models.EncryptionData{
			Encrypted: "ct", Salt: "s", IV: "n",
		},
	}
	m.repo.EXPECT().GetNote(ctx, "id-1").Return(enc, nil)
	m.engine.EXPECT().Decrypt(models.Ciphertext("ct"), "wrong", "s", "n").
		Return("", crypto.ErrDecryptionFailed)

	err := app.Run(ctx, []string{"decrypt", "id-1", "wrong"})

	assert.ErrorIs(t, err, service.ErrWrongPassword)
}

func TestApp_Translate(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, out, m := newTestApp(t, ctrl)
	ctx := context.Background()

	m.repo.EXPECT().GetNote(ctx, "id-1").
		Return(models.Note{ID: "id-1", Title: "t", Content: "good morning"}, nil)
	m.gateway.EXPECT().Translate(ctx, "good morning", "de").
		Return(models.Translation{Language: "de", Text: "guten Morgen"}, nil)

	err := app.Run(ctx, []string{"translate", "id-1", "de"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "guten Morgen")
}
