package bot

import (
	"testing"

	"pairbot/internal/domain"
	"pairbot/internal/service"
	"pairbot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func newTestHandler(users *testutil.MockUserRepository, pairs *testutil.MockPairRepository) *Handler {
	normalizer := service.NewNormalizer(testutil.CyrillicDetector{})
	dict := service.NewDictionaryService(users, pairs, normalizer, testutil.NewTestLogger())
	return NewHandler(dict, testutil.NewTestLogger())
}

func TestHandler_CreatePair(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		membershipNew bool
		expectedReply string
	}{
		{
			name:          "new pair",
			text:          "/create_pair кот cat",
			membershipNew: true,
			expectedReply: "Created",
		},
		{
			name:          "duplicate pair",
			text:          "/create_pair кот cat",
			membershipNew: false,
			expectedReply: "Exist",
		},
		{
			name:          "words are normalized before storing",
			text:          "/create_pair КОТ Cat",
			membershipNew: true,
			expectedReply: "Created",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(testutil.MockUserRepository)
			pairs := new(testutil.MockPairRepository)

			user := testutil.NewTestUser(1, 42, "alice")
			pair := testutil.NewTestPair(7, "кот", "cat")
			users.On("GetUser", int64(42)).Return(user, nil)
			pairs.On("FindOrCreatePair", "кот", "cat").Return(pair, false, nil)
			pairs.On("FindOrCreateMembership", int64(1), int64(7)).Return(tt.membershipNew, nil)

			h := newTestHandler(users, pairs)

			reply := h.Handle(42, "alice", tt.text)

			assert.Equal(t, tt.expectedReply, reply)
			users.AssertExpectations(t)
			pairs.AssertExpectations(t)
		})
	}
}

func TestHandler_CreatePair_Errors(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		expectedReply string
	}{
		{
			name:          "missing arguments",
			text:          "/create_pair кот",
			expectedReply: "Usage: /create_pair <word> <word>",
		},
		{
			name:          "too many arguments",
			text:          "/create_pair кот cat dog",
			expectedReply: "Usage: /create_pair <word> <word>",
		},
		{
			name:          "ambiguous pair",
			text:          "/create_pair dog cat",
			expectedReply: replyAmbiguous,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(testutil.MockUserRepository)
			pairs := new(testutil.MockPairRepository)

			h := newTestHandler(users, pairs)

			reply := h.Handle(42, "alice", tt.text)

			// No store interaction on invalid input
			assert.Equal(t, tt.expectedReply, reply)
			users.AssertExpectations(t)
			pairs.AssertExpectations(t)
		})
	}
}

func TestHandler_UpdatePair(t *testing.T) {
	tests := []struct {
		name          string
		user          *domain.User
		match         *domain.Pair
		updateError   error
		expectedReply string
	}{
		{
			name:          "updated",
			user:          testutil.NewTestUser(1, 42, "alice"),
			match:         testutil.NewTestPair(7, "кот", "cta"),
			expectedReply: "Updated",
		},
		{
			name:          "store refused the update",
			user:          testutil.NewTestUser(1, 42, "alice"),
			match:         testutil.NewTestPair(7, "кот", "cta"),
			updateError:   domain.ErrNotPersisted,
			expectedReply: "Not updated",
		},
		{
			name:          "no match",
			user:          testutil.NewTestUser(1, 42, "alice"),
			expectedReply: "Pair not found",
		},
		{
			name:          "no dictionary",
			expectedReply: replyNoDictionary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(testutil.MockUserRepository)
			pairs := new(testutil.MockPairRepository)

			if tt.user == nil {
				users.On("GetUser", int64(42)).Return(nil, nil)
			} else {
				users.On("GetUser", int64(42)).Return(tt.user, nil)
				if tt.match == nil {
					pairs.On("FindPairForUser", tt.user.ID, []string{"кот", "cat"}).Return(nil, nil)
				} else {
					pairs.On("FindPairForUser", tt.user.ID, []string{"кот", "cat"}).Return(tt.match, nil)
					pairs.On("UpdatePairFields", tt.match.ID, "кот", "cat").Return(tt.updateError)
				}
			}

			h := newTestHandler(users, pairs)

			reply := h.Handle(42, "alice", "/update_pair кот cat")

			assert.Equal(t, tt.expectedReply, reply)
		})
	}
}

func TestHandler_DeletePair(t *testing.T) {
	tests := []struct {
		name          string
		user          *domain.User
		match         *domain.Pair
		deleteError   error
		expectedReply string
	}{
		{
			name:          "deleted",
			user:          testutil.NewTestUser(1, 42, "alice"),
			match:         testutil.NewTestPair(7, "кот", "cat"),
			expectedReply: "Deleted",
		},
		{
			name:          "store refused the delete",
			user:          testutil.NewTestUser(1, 42, "alice"),
			match:         testutil.NewTestPair(7, "кот", "cat"),
			deleteError:   domain.ErrNotPersisted,
			expectedReply: "Not deleted",
		},
		{
			name:          "no exact match",
			user:          testutil.NewTestUser(1, 42, "alice"),
			expectedReply: "Pair not found",
		},
		{
			name:          "no dictionary",
			expectedReply: replyNoDictionary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(testutil.MockUserRepository)
			pairs := new(testutil.MockPairRepository)

			if tt.user == nil {
				users.On("GetUser", int64(42)).Return(nil, nil)
			} else {
				users.On("GetUser", int64(42)).Return(tt.user, nil)
				if tt.match == nil {
					pairs.On("FindExactPairForUser", tt.user.ID, "кот", "cat").Return(nil, nil)
				} else {
					pairs.On("FindExactPairForUser", tt.user.ID, "кот", "cat").Return(tt.match, nil)
					pairs.On("DeletePair", tt.match.ID).Return(tt.deleteError)
				}
			}

			h := newTestHandler(users, pairs)

			reply := h.Handle(42, "alice", "/delete_pair cat кот")

			assert.Equal(t, tt.expectedReply, reply)
		})
	}
}

func TestHandler_ShowDict(t *testing.T) {
	t.Run("lists pairs one per line", func(t *testing.T) {
		users := new(testutil.MockUserRepository)
		pairs := new(testutil.MockPairRepository)

		user := testutil.NewTestUser(1, 42, "alice")
		users.On("GetUser", int64(42)).Return(user, nil)
		pairs.On("PairsForUser", int64(1)).Return([]domain.Pair{
			*testutil.NewTestPair(7, "кот", "cat"),
			*testutil.NewTestPair(8, "пёс", "dog"),
		}, nil)

		h := newTestHandler(users, pairs)

		reply := h.Handle(42, "alice", "/show_dict")

		assert.Equal(t, "кот: cat\nпёс: dog", reply)
	})

	t.Run("empty dictionary gives empty reply", func(t *testing.T) {
		users := new(testutil.MockUserRepository)
		pairs := new(testutil.MockPairRepository)

		users.On("GetUser", int64(42)).Return(nil, nil)

		h := newTestHandler(users, pairs)

		reply := h.Handle(42, "alice", "/show_dict")

		assert.Equal(t, "", reply)
	})
}

func TestHandler_Answer(t *testing.T) {
	tests := []struct {
		name          string
		stored        *domain.Pair
		expectedReply string
	}{
		{
			name:          "correct answer includes the pair",
			stored:        testutil.NewTestPair(7, "кот", "cat"),
			expectedReply: "Correct! кот: cat",
		},
		{
			name:          "wrong answer states the expected pair",
			stored:        testutil.NewTestPair(7, "кот", "dog"),
			expectedReply: "Wrong. The right answer is кот: dog",
		},
		{
			name:          "no candidate pair",
			expectedReply: "Pair not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(testutil.MockUserRepository)
			pairs := new(testutil.MockPairRepository)

			user := testutil.NewTestUser(1, 42, "alice")
			users.On("GetUser", int64(42)).Return(user, nil)
			if tt.stored == nil {
				pairs.On("FindPairForUser", int64(1), []string{"кот", "cat"}).Return(nil, nil)
			} else {
				pairs.On("FindPairForUser", int64(1), []string{"кот", "cat"}).Return(tt.stored, nil)
			}

			h := newTestHandler(users, pairs)

			reply := h.Handle(42, "alice", "/answer кот cat")

			assert.Equal(t, tt.expectedReply, reply)
		})
	}
}

func TestHandler_Unroutable(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			name: "unknown command",
			text: "/frobnicate кот cat",
		},
		{
			name: "plain text",
			text: "hello there",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(testutil.MockUserRepository)
			pairs := new(testutil.MockPairRepository)

			h := newTestHandler(users, pairs)

			reply := h.Handle(42, "alice", tt.text)

			// Fixed fallback reply, no handler invoked, no store access
			assert.Equal(t, replyNotRecognized, reply)
			users.AssertExpectations(t)
			pairs.AssertExpectations(t)
		})
	}
}

func TestHandler_Help(t *testing.T) {
	h := newTestHandler(new(testutil.MockUserRepository), new(testutil.MockPairRepository))

	reply := h.Handle(42, "alice", "/help")

	for _, cmd := range []string{"/create_pair", "/update_pair", "/delete_pair", "/show_dict", "/answer", "/help"} {
		assert.Contains(t, reply, cmd)
	}
}
