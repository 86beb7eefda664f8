package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"pokedex/internal/pokemon"
	"pokedex/internal/pokemon/handler/mocks"
	dErrors "pokedex/pkg/domain-errors"
	"pokedex/pkg/platform/httputil"
	"pokedex/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/pokemon-mocks.go -package=mocks Service
type PokemonHandlerSuite struct {
	suite.Suite
	ctx     context.Context
	service *mocks.MockService
	router  chi.Router
}

func TestPokemonHandlerSuite(t *testing.T) {
	suite.Run(t, new(PokemonHandlerSuite))
}

func (s *PokemonHandlerSuite) SetupSuite() {
	s.ctx = context.Background()
}

func (s *PokemonHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.T().Cleanup(ctrl.Finish)

	s.service = mocks.NewMockService(ctrl)
	s.router = chi.NewRouter()
	New(s.service, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(s.router)
}

func (s *PokemonHandlerSuite) get(target string) *httptest.ResponseRecorder {
	req := testutil.NewJSONRequest(s.T(), http.MethodGet, target, nil).WithContext(s.ctx)
	return testutil.DoRequest(s.router, req)
}

func intPtr(v int) *int { return &v }

func (s *PokemonHandlerSuite) TestCard() {
	s.service.EXPECT().Card(gomock.Any(), "pikachu").Return(&pokemon.Card{
		ID:      25,
		Name:    "pikachu",
		Species: "pikachu",
		Types:   []string{"electric"},
		Artwork: "art.png",
		Stats:   []pokemon.Stat{{Name: "speed", Base: 90}},
	}, nil)

	w := s.get("/pokemon/pikachu")

	s.Equal(http.StatusOK, w.Code)
	resp := testutil.DecodeJSON[CardResponse](s.T(), w)
	s.Equal(25, resp.ID)
	s.Equal([]string{"electric"}, resp.Types)
	s.Equal("art.png", resp.Artwork)
	s.Equal([]StatResponse{{Name: "speed", Base: 90}}, resp.Stats)
}

func (s *PokemonHandlerSuite) TestCardNotFound() {
	s.service.EXPECT().Card(gomock.Any(), "missingno").
		Return(nil, dErrors.New(dErrors.CodeNotFound, `pokemon "missingno" not found`))

	w := s.get("/pokemon/missingno")

	s.Equal(http.StatusNotFound, w.Code)
	resp := testutil.DecodeJSON[httputil.ErrorResponse](s.T(), w)
	s.Equal("not_found", resp.Error)
}

func (s *PokemonHandlerSuite) TestEncounters() {
	s.Run("defaults to red-blue", func() {
		s.service.EXPECT().Encounters(gomock.Any(), "pikachu", "red-blue").Return([]pokemon.Location{{
			Area:     "viridian-forest-area",
			Versions: []pokemon.VersionChance{{Version: "red", MaxChance: 5}},
		}}, nil)

		w := s.get("/pokemon/pikachu/encounters")

		s.Equal(http.StatusOK, w.Code)
		resp := testutil.DecodeJSON[EncountersResponse](s.T(), w)
		s.Equal("red-blue", resp.Game)
		s.Require().Len(resp.Locations, 1)
		s.Equal("viridian-forest-area", resp.Locations[0].Area)
		s.Equal(5, resp.Locations[0].Versions[0].MaxChance)
	})

	s.Run("no encounters is an empty list", func() {
		s.service.EXPECT().Encounters(gomock.Any(), "mew", "x-y").Return(nil, nil)

		w := s.get("/pokemon/mew/encounters?game=X-Y")

		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"pokemon":"mew","game":"x-y","locations":[]}`, w.Body.String())
	})

	s.Run("unknown game", func() {
		w := s.get("/pokemon/pikachu/encounters?game=stadium")

		s.Equal(http.StatusBadRequest, w.Code)
		resp := testutil.DecodeJSON[httputil.ErrorResponse](s.T(), w)
		s.Equal("validation_error", resp.Error)
	})
}

func (s *PokemonHandlerSuite) TestTMMoves() {
	s.service.EXPECT().TMMoves(gomock.Any(), "pikachu", "gold-silver").Return([]pokemon.Move{
		{Name: "thunderbolt", Type: "electric", Power: intPtr(95), Accuracy: intPtr(100)},
		{Name: "toxic", Type: "poison", Accuracy: intPtr(85)},
	}, nil)

	w := s.get("/pokemon/pikachu/moves?game=gold-silver")

	s.Equal(http.StatusOK, w.Code)
	resp := testutil.DecodeJSON[MovesResponse](s.T(), w)
	s.Require().Len(resp.Moves, 2)
	s.Equal(95, *resp.Moves[0].Power)
	s.Nil(resp.Moves[1].Power)
}

func (s *PokemonHandlerSuite) TestMove() {
	s.Run("found", func() {
		s.service.EXPECT().Move(gomock.Any(), "growl").
			Return(&pokemon.Move{Name: "growl", Type: "normal", Accuracy: intPtr(100)}, nil)

		w := s.get("/moves/growl")

		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"name":"growl","type":"normal","power":null,"accuracy":100}`, w.Body.String())
	})

	s.Run("upstream down is retryable", func() {
		s.service.EXPECT().Move(gomock.Any(), "surf").
			Return(nil, dErrors.New(dErrors.CodeUnavailable, `move "surf": upstream unavailable`))

		w := s.get("/moves/surf")

		s.Equal(http.StatusBadGateway, w.Code)
		resp := testutil.DecodeJSON[httputil.ErrorResponse](s.T(), w)
		s.True(resp.Retryable)
	})
}
