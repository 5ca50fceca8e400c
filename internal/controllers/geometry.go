package controllers

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkb"
)

var errNotAPoint = errors.New("geometry must be a GeoJSON Point")

// parsePointGeometry turns a GeoJSON Point into little-endian WKB with
// SRID-free coordinates (lng, lat). Empty input means "no location".
func parsePointGeometry(raw []byte) ([]byte, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var g geom.T
	if err := gjson.Unmarshal(raw, &g); err != nil {
		return nil, fmt.Errorf("invalid GeoJSON: %w", err)
	}
	p, ok := g.(*geom.Point)
	if !ok {
		return nil, errNotAPoint
	}
	lng, lat := p.X(), p.Y()
	if lng < -180 || lng > 180 || lat < -90 || lat > 90 {
		return nil, fmt.Errorf("coordinates out of range: [%g, %g]", lng, lat)
	}
	return wkb.Marshal(p, binary.LittleEndian)
}

// convertWKBToGeoJSON converts WKB bytes into a GeoJSON string
func convertWKBToGeoJSON(wkbBytes []byte) (string, error) {
	if len(wkbBytes) == 0 {
		return "", nil
	}
	g, err := wkb.Unmarshal(wkbBytes)
	if err != nil {
		return "", err
	}
	b, err := gjson.Marshal(g)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
