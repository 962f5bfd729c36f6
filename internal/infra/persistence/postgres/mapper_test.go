package postgres

import (
	"testing"

	"ecospot/internal/domain/entity"
	"ecospot/internal/domain/geo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserMapper_LocationColumns(t *testing.T) {
	user := &entity.User{
		ID:       uuid.New(),
		FullName: "Ana",
		Location: &entity.Location{Lat: 44.8176, Lng: 20.4633},
	}

	userM := fromUserDomain(user)
	require.NotNil(t, userM.Lat)
	require.NotNil(t, userM.Lng)
	assert.Equal(t, 44.8176, *userM.Lat)
	assert.Equal(t, 20.4633, *userM.Lng)

	back := toUserDomain(userM)
	assert.Equal(t, user.Location, back.Location)

	userM.Lat = nil
	assert.Nil(t, toUserDomain(userM).Location, "half a coordinate is no location")
}

func TestSpotMapper_AssignsTileKey(t *testing.T) {
	spot := &entity.RecyclingSpot{
		ID:         uuid.New(),
		Name:       "Kalemegdan bins",
		Location:   entity.Location{Lat: 44.8231, Lng: 20.4506},
		WasteTypes: entity.WasteTypes{entity.WasteTypePlastic, entity.WasteTypeGlass},
	}

	spotM := fromSpotDomain(spot)
	assert.Equal(t, geo.TileKey(spot.Location.Point()), spotM.TileKey)
	assert.Equal(t, []string{"plastic", "glass"}, spotM.WasteTypes)

	back := toSpotDomain(spotM)
	assert.Equal(t, spot.Location, back.Location)
	assert.Equal(t, spot.WasteTypes, back.WasteTypes)
}
