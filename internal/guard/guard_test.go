package guard

import (
	"errors"
	"testing"
	"time"

	"github.com/ohadaerp/erp/internal/bus"
	"github.com/ohadaerp/erp/internal/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type client struct {
	ID     string
	Name   string
	Status string
}

func clientID(c client) string { return c.ID }

var (
	jean  = client{ID: "1", Name: "Jean Dupont", Status: "active"}
	marie = client{ID: "2", Name: "Marie Martin", Status: "inactive"}
)

func newClients(t *testing.T) *record.Store[client] {
	t.Helper()
	s := record.NewStore(record.Schema[client]{
		Kind: "customer",
		ID:   clientID,
		Searchable: []record.Field[client]{
			{Name: "name", Value: func(c client) string { return c.Name }},
		},
		Filterable: []record.Field[client]{
			{Name: "status", Value: func(c client) string { return c.Status }},
		},
	})
	require.NoError(t, s.Upsert(jean))
	require.NoError(t, s.Upsert(marie))
	return s
}

func remaining(t *testing.T, s *record.Store[client]) []string {
	t.Helper()
	all, err := s.Query(record.Query{})
	require.NoError(t, err)
	out := make([]string, len(all))
	for i, c := range all {
		out[i] = c.ID
	}
	return out
}

// flakyRemover fails with err until err is cleared.
type flakyRemover struct {
	err   error
	calls []string
}

func (f *flakyRemover) Kind() string { return "customer" }

func (f *flakyRemover) Remove(id string) error {
	f.calls = append(f.calls, id)
	return f.err
}

func TestDeleteScenario(t *testing.T) {
	s := newClients(t)
	g := New(s, clientID)

	prompt, err := g.RequestDelete(marie, Request{ItemName: marie.Name, ItemType: "client"})
	require.NoError(t, err)
	assert.Equal(t, Confirming, g.State())
	assert.Equal(t, DefaultTitle, prompt.Title)
	assert.Equal(t, "Marie Martin", prompt.ItemName)
	assert.Equal(t, "client", prompt.ItemType)
	assert.Contains(t, prompt.Message, "Marie Martin")
	assert.Contains(t, prompt.Message, "irréversible")
	assert.Contains(t, prompt.Message, "définitivement")

	require.NoError(t, g.Confirm())
	assert.Equal(t, Idle, g.State())
	assert.Equal(t, []string{"1"}, remaining(t, s))
}

func TestCancelLeavesStoreUnchanged(t *testing.T) {
	s := newClients(t)
	g := New(s, clientID)

	_, err := g.RequestDelete(jean, Request{ItemName: jean.Name, ItemType: "client"})
	require.NoError(t, err)
	require.NoError(t, g.Cancel())

	assert.Equal(t, Idle, g.State())
	assert.Equal(t, []string{"1", "2"}, remaining(t, s))
	_, pending := g.Pending()
	assert.False(t, pending)
}

func TestSecondRequestIsRejected(t *testing.T) {
	s := newClients(t)
	g := New(s, clientID)

	_, err := g.RequestDelete(jean, Request{ItemName: jean.Name})
	require.NoError(t, err)

	_, err = g.RequestDelete(marie, Request{ItemName: marie.Name})
	require.ErrorIs(t, err, ErrInvalidStateTransition)

	var terr *InvalidTransitionError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, Confirming, terr.From)
	assert.Equal(t, OpRequest, terr.Op)

	staged, ok := g.Candidate()
	require.True(t, ok)
	assert.Equal(t, jean, staged)
	prompt, _ := g.Pending()
	assert.Equal(t, "Jean Dupont", prompt.ItemName)
}

func TestIdleRejectsCancelAndConfirm(t *testing.T) {
	s := newClients(t)
	g := New(s, clientID)

	assert.ErrorIs(t, g.Cancel(), ErrInvalidStateTransition)
	assert.ErrorIs(t, g.Confirm(), ErrInvalidStateTransition)
	assert.Equal(t, Idle, g.State())
	assert.Equal(t, []string{"1", "2"}, remaining(t, s))
}

func TestConfirmTreatsNotFoundAsDone(t *testing.T) {
	s := newClients(t)
	g := New(s, clientID)

	_, err := g.RequestDelete(marie, Request{ItemName: marie.Name})
	require.NoError(t, err)
	require.NoError(t, s.Remove("2"))

	require.NoError(t, g.Confirm())
	assert.Equal(t, Idle, g.State())
	assert.NoError(t, g.LastError())
}

func TestConfirmFailureKeepsDialogOpen(t *testing.T) {
	boom := errors.New("disk on fire")
	r := &flakyRemover{err: boom}
	g := New(r, clientID)

	_, err := g.RequestDelete(jean, Request{ItemName: jean.Name, ItemType: "client"})
	require.NoError(t, err)

	err = g.Confirm()
	require.ErrorIs(t, err, boom)
	assert.Equal(t, Confirming, g.State())
	assert.ErrorIs(t, g.LastError(), boom)
	prompt, pending := g.Pending()
	require.True(t, pending)
	assert.Equal(t, "Jean Dupont", prompt.ItemName)

	r.err = nil
	require.NoError(t, g.Confirm())
	assert.Equal(t, Idle, g.State())
	assert.NoError(t, g.LastError())
	assert.Equal(t, []string{"1", "1"}, r.calls)
}

func TestCancelAfterFailureClearsError(t *testing.T) {
	r := &flakyRemover{err: errors.New("locked")}
	g := New(r, clientID)

	_, err := g.RequestDelete(jean, Request{})
	require.NoError(t, err)
	require.Error(t, g.Confirm())
	require.NoError(t, g.Cancel())

	assert.Equal(t, Idle, g.State())
	assert.NoError(t, g.LastError())
}

func TestCustomMessageIsVerbatim(t *testing.T) {
	s := newClients(t)
	g := New(s, clientID)

	custom := "Toutes les commandes et factures de ce client seront également supprimées."
	prompt, err := g.RequestDelete(jean, Request{Title: "Supprimer le client", ItemName: jean.Name, ItemType: "client", Message: custom})
	require.NoError(t, err)
	assert.Equal(t, custom, prompt.Message)
	assert.Equal(t, "Supprimer le client", prompt.Title)
}

func TestItemNameDefaultsToID(t *testing.T) {
	s := newClients(t)
	g := New(s, clientID)

	prompt, err := g.RequestDelete(jean, Request{ItemType: "client"})
	require.NoError(t, err)
	assert.Equal(t, "1", prompt.ItemName)
	assert.Contains(t, prompt.Message, "« 1 »")
}

func TestGuardPublishesTransitions(t *testing.T) {
	b := bus.New()
	ch, unsub := b.Subscribe("guard.", 8)
	defer unsub()

	s := newClients(t)
	g := New(s, clientID, WithBus(b))

	_, err := g.RequestDelete(jean, Request{})
	require.NoError(t, err)
	require.NoError(t, g.Cancel())

	want := []StateChange{
		{Kind: "customer", ID: "1", From: Idle, To: Confirming},
		{Kind: "customer", ID: "1", From: Confirming, To: Idle},
	}
	for _, w := range want {
		select {
		case evt := <-ch:
			assert.Equal(t, EventStateChanged, evt.Kind)
			assert.Equal(t, w, evt.Payload)
		case <-time.After(time.Second):
			t.Fatal("timeout waiting for guard event")
		}
	}
}

func TestDefaultMessage(t *testing.T) {
	tests := []struct {
		itemType, itemName string
		want               string
	}{
		{"client", "Marie Martin", "Supprimer « Marie Martin » (client) ? "},
		{"", "Facture F-001", "Supprimer « Facture F-001 » ? "},
	}
	for _, tt := range tests {
		got := DefaultMessage(tt.itemType, tt.itemName)
		assert.Contains(t, got, tt.want)
		assert.Contains(t, got, "données associées")
	}
}

func TestComposeBlankFieldsFallBack(t *testing.T) {
	p := Compose(Request{Title: "  ", ItemName: "X", Message: " "})
	assert.Equal(t, DefaultTitle, p.Title)
	assert.Equal(t, DefaultMessage("", "X"), p.Message)
}
