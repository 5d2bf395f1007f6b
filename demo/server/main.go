package main

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/paulmach/orb/geojson"
	"github.com/spf13/pflag"
	sdo "github.com/tingold/go-sdo"
	"go.uber.org/zap"
)

// Landmark pairs a name with an SDO_GEOMETRY literal, as they would come out
// of SQL*Plus or a spatial metadata dump.
type Landmark struct {
	Name    string
	Kind    string
	Literal string
}

var landmarks = []Landmark{
	{"Tokyo Tower", "point", "SDO_GEOMETRY(2001, 4326, SDO_POINT_TYPE(139.7454, 35.6586, NULL), NULL, NULL)"},
	{"Statue of Liberty", "point", "SDO_GEOMETRY(2001, 4326, SDO_POINT_TYPE(-74.0445, 40.6892, NULL), NULL, NULL)"},
	{"Eiffel Tower", "point", "SDO_GEOMETRY(2001, 4326, SDO_POINT_TYPE(2.2945, 48.8584, NULL), NULL, NULL)"},
	{"Sydney Opera House", "point", "SDO_GEOMETRY(2001, 4326, SDO_POINT_TYPE(151.2153, -33.8568, NULL), NULL, NULL)"},
	{"Christ the Redeemer", "point", "SDO_GEOMETRY(2001, 4326, SDO_POINT_TYPE(-43.2105, -22.9519, NULL), NULL, NULL)"},
	{"Brandenburg Gate", "point", "SDO_GEOMETRY(2001, 4326, MDSYS.SDO_POINT_TYPE(13.3777, 52.5163, NULL), NULL, NULL)"},
	{"Table Mountain summit", "point", "SDO_GEOMETRY(3001, 4326, NULL, SDO_ELEM_INFO_ARRAY(1,1,1), SDO_ORDINATE_ARRAY(18.4241, -33.9628, 1085))"},
	{"Hyde Park", "polygon", "SDO_GEOMETRY(2003, 4326, NULL, SDO_ELEM_INFO_ARRAY(1,1003,3), SDO_ORDINATE_ARRAY(-0.1763, 51.5024, -0.1526, 51.5129))"},
	{"Thames reach", "line", "SDO_GEOMETRY(2002, 4326, NULL, SDO_ELEM_INFO_ARRAY(1,2,1), SDO_ORDINATE_ARRAY(-0.1195, 51.5033, -0.1121, 51.5081, -0.0972, 51.5076, -0.0865, 51.5079))"},
	{"Giza pyramids", "multipoint", "SDO_GEOMETRY(2005, 4326, NULL, SDO_ELEM_INFO_ARRAY(1,1,3), SDO_ORDINATE_ARRAY(31.1342, 29.9792, 31.1308, 29.9761, 31.1284, 29.9725))"},
}

func main() {
	addr := pflag.String("addr", ":8080", "listen address")
	pflag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Decode every literal up front; the handlers serve prebuilt payloads.
	fc := geojson.NewFeatureCollection()
	for _, lm := range landmarks {
		g, err := sdo.ParseLiteral(lm.Literal)
		if err != nil {
			logger.Fatal("bad literal", zap.String("name", lm.Name), zap.Error(err))
		}
		decoded, err := sdo.Decode(g)
		if err != nil {
			logger.Fatal("decode failed", zap.String("name", lm.Name), zap.Error(err))
		}
		og, err := sdo.ToOrb(decoded)
		if err != nil {
			logger.Fatal("conversion failed", zap.String("name", lm.Name), zap.Error(err))
		}

		f := geojson.NewFeature(og)
		f.Properties = geojson.Properties{
			"name":      lm.Name,
			"kind":      lm.Kind,
			"sdo_gtype": int(g.GType),
		}
		fc.Append(f)
	}

	geoJSONData, err := json.Marshal(fc)
	if err != nil {
		logger.Fatal("marshal failed", zap.Error(err))
	}

	var sb strings.Builder
	for _, lm := range landmarks {
		sb.WriteString(lm.Literal)
		sb.WriteString(";\n")
	}
	literalData := []byte(sb.String())

	http.HandleFunc("/data.geojson", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/geo+json")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Write(geoJSONData)
	})
	http.HandleFunc("/data.sdo", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write(literalData)
	})
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("GET /data.geojson  decoded landmarks as GeoJSON\nGET /data.sdo      the raw SDO_GEOMETRY literals\n"))
	})

	logger.Info("server starting",
		zap.String("addr", *addr),
		zap.Int("landmarks", len(landmarks)))
	if err := http.ListenAndServe(*addr, nil); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
