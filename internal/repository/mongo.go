package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	pkgconfig "github.com/chmanikanta24/cafe-storefront/pkg/config"
)

const srvScheme = "mongodb+srv://"

// SanitizeSRVURI strips ports from the host portion of a mongodb+srv URI.
// SRV URIs do not allow ports; a copied-over standard URI with ports would
// otherwise fail deep inside the driver with an unhelpful error. Returns the
// cleaned URI and whether anything was removed.
func SanitizeSRVURI(uri string) (string, bool) {
	if !strings.HasPrefix(uri, srvScheme) {
		return uri, false
	}
	afterScheme := strings.TrimPrefix(uri, srvScheme)

	authority := afterScheme
	rest := ""
	if i := strings.Index(afterScheme, "/"); i != -1 {
		authority = afterScheme[:i]
		rest = afterScheme[i:]
	}

	authPart := ""
	hostsPart := authority
	if i := strings.LastIndex(authority, "@"); i != -1 {
		authPart = authority[:i+1]
		hostsPart = authority[i+1:]
	}

	hosts := strings.Split(hostsPart, ",")
	changed := false
	for i, h := range hosts {
		if j := strings.Index(h, ":"); j != -1 {
			hosts[i] = h[:j]
			changed = true
		}
	}

	return srvScheme + authPart + strings.Join(hosts, ",") + rest, changed
}

// NewMongoDatabase connects to the configured MongoDB deployment and returns
// a handle on the application database.
func NewMongoDatabase(ctx context.Context, cfg *pkgconfig.Config, logger *zap.Logger) (*mongo.Database, error) {
	uri, changed := SanitizeSRVURI(cfg.MongoURI)
	if changed {
		logger.Warn("Removed port from mongodb+srv host(s); ports are not allowed for SRV URIs")
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client.Database(cfg.MongoDB), nil
}
