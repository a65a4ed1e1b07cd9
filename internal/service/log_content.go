package service

import (
	"github.com/MKhiriev/go-appconfig-reader/internal/logger"
	"github.com/MKhiriev/go-appconfig-reader/internal/utils"
)

// logContent writes title and then the pretty-printed value as two info
// lines. The content is logged as is, without redaction.
func logContent(log *logger.Logger, title string, value any) {
	pretty, err := utils.PrettyJSON(value)
	if err != nil {
		log.Warn().Err(err).Msg("cannot render content as json")
		return
	}

	log.Info().Msg(title)
	log.Info().Msg(pretty)
}
