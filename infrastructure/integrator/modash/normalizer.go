package modash

import (
	"fmt"
	"strconv"
	"strings"

	modashdomain "github.com/vfg2006/influencer-hub-api/infrastructure/integrator/modash/domain"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
	"github.com/vfg2006/influencer-hub-api/pkg/utils"
)

// fieldPriorities mapeia, por plataforma, cada campo canônico para a lista de
// nomes que o provedor pode usar, em ordem de prioridade. O primeiro nome que
// coagir para um valor finito e não-negativo vence.
var fieldPriorities = map[domain.Platform]map[string][]string{
	domain.PlatformInstagram: {
		"followers":      {"followers", "followersCount", "followers_count"},
		"engagementRate": {"engagementRate", "engagement_rate", "engRate"},
		"avgViews":       {"avgReelsViews", "avgViews", "averageViews", "avg_views"},
		"avgLikes":       {"avgLikes", "averageLikes", "avg_likes"},
		"avgComments":    {"avgComments", "averageComments", "avg_comments"},
		"username":       {"username", "handle"},
		"profileUrl":     {"url", "profileUrl", "profile_url"},
		"picture":        {"picture", "profilePicture", "avatar"},
	},
	domain.PlatformTikTok: {
		"followers":      {"followers", "fans", "followerCount"},
		"engagementRate": {"engagementRate", "engagement_rate", "engRate"},
		"avgViews":       {"avgViews", "avgPlays", "averageViews", "avg_views"},
		"avgLikes":       {"avgLikes", "averageLikes", "avg_likes"},
		"avgComments":    {"avgComments", "averageComments", "avg_comments"},
		"username":       {"username", "uniqueId", "handle"},
		"profileUrl":     {"url", "profileUrl", "profile_url"},
		"picture":        {"picture", "avatar", "profilePicture"},
	},
	domain.PlatformYouTube: {
		"followers":      {"followers", "subscribers", "subscriberCount"},
		"engagementRate": {"engagementRate", "engagement_rate", "engRate"},
		"avgViews":       {"avgViews", "avgVideoViews", "averageViews", "avg_views"},
		"avgLikes":       {"avgLikes", "averageLikes", "avg_likes"},
		"avgComments":    {"avgComments", "averageComments", "avg_comments"},
		"username":       {"username", "handle", "channelName"},
		"profileUrl":     {"url", "profileUrl", "channelUrl"},
		"picture":        {"picture", "avatar", "thumbnail"},
	},
}

// Fallbacks são valores de reserva fornecidos pelo chamador, usados quando
// nenhum campo de origem do payload é aproveitável. Na prática vêm do último
// estado conhecido do vínculo de plataforma.
type Fallbacks struct {
	Followers      *int64
	EngagementRate *float64
	AvgViews       *float64
	Username       *string
}

// NormalizationError indica que nenhum campo de origem era aproveitável para
// uma métrica obrigatória, registrando quais nomes foram tentados
type NormalizationError struct {
	Field       string
	TriedFields []string
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf(
		"nenhum campo aproveitável para %q no payload (tentados: %s)",
		e.Field,
		strings.Join(e.TriedFields, ", "),
	)
}

// Normalize colapsa as variações de nome de campo do provedor na forma
// canônica de métricas. É uma função pura: a mesma entrada produz sempre a
// mesma saída, sem I/O nem efeitos colaterais.
//
// A única métrica obrigatória é followers: sem campo de origem aproveitável e
// sem fallback, a normalização falha. As demais métricas caem para o fallback
// do chamador e, na ausência dele, para o default documentado: 0 para
// engagementRate, nil para os campos opcionais e "unknown" para username.
func Normalize(report *modashdomain.ProfileReport, fallbacks *Fallbacks) (domain.NormalizedMetrics, error) {
	var metrics domain.NormalizedMetrics

	priorities, ok := fieldPriorities[report.Platform]
	if !ok {
		return metrics, fmt.Errorf("plataforma não suportada pelo normalizador: %s", report.Platform)
	}

	if fallbacks == nil {
		fallbacks = &Fallbacks{}
	}

	followers, ok := pickNumber(report.Profile, priorities["followers"])
	if !ok {
		if fallbacks.Followers == nil {
			return metrics, &NormalizationError{
				Field:       "followers",
				TriedFields: priorities["followers"],
			}
		}
		followers = float64(*fallbacks.Followers)
	}
	metrics.Followers = int64(followers)

	if rate, ok := pickNumber(report.Profile, priorities["engagementRate"]); ok {
		metrics.EngagementRate = rate
	} else if fallbacks.EngagementRate != nil {
		metrics.EngagementRate = *fallbacks.EngagementRate
	}

	if views, ok := pickNumber(report.Profile, priorities["avgViews"]); ok {
		metrics.AvgViews = &views
	} else if fallbacks.AvgViews != nil {
		views := *fallbacks.AvgViews
		metrics.AvgViews = &views
	}

	if likes, ok := pickNumber(report.Profile, priorities["avgLikes"]); ok {
		metrics.AvgLikes = &likes
	}

	if comments, ok := pickNumber(report.Profile, priorities["avgComments"]); ok {
		metrics.AvgComments = &comments
	}

	if username, ok := pickString(report.Profile, priorities["username"]); ok {
		metrics.Username = username
	} else if fallbacks.Username != nil {
		metrics.Username = *fallbacks.Username
	} else {
		metrics.Username = "unknown"
	}

	if profileURL, ok := pickString(report.Profile, priorities["profileUrl"]); ok {
		metrics.ProfileURL = &profileURL
	}

	if picture, ok := pickString(report.Profile, priorities["picture"]); ok {
		metrics.Picture = &picture
	}

	return metrics, nil
}

// pickNumber devolve o primeiro campo da lista que coage para um número
// finito e não-negativo
func pickNumber(profile map[string]any, fields []string) (float64, bool) {
	for _, field := range fields {
		raw, ok := profile[field]
		if !ok {
			continue
		}

		value, ok := coerceNumber(raw)
		if !ok {
			continue
		}

		return value, true
	}
	return 0, false
}

// coerceNumber aceita números e strings numéricas, rejeitando NaN, ±Inf e
// valores negativos em vez de coagi-los silenciosamente para 0
func coerceNumber(raw any) (float64, bool) {
	var value float64

	switch v := raw.(type) {
	case float64:
		value = v
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		value = parsed
	default:
		return 0, false
	}

	if !utils.IsFinite(value) || value < 0 {
		return 0, false
	}

	return value, true
}

func pickString(profile map[string]any, fields []string) (string, bool) {
	for _, field := range fields {
		raw, ok := profile[field]
		if !ok {
			continue
		}

		value, ok := raw.(string)
		if !ok || value == "" {
			continue
		}

		return value, true
	}
	return "", false
}
