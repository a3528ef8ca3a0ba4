package mocks

//go:generate mockgen -destination=./mock_provider.go -package=mocks github.com/rxtech-lab/argo-data/pkg/marketdata/provider Provider
//go:generate mockgen -destination=./mock_store.go -package=mocks github.com/rxtech-lab/argo-data/pkg/marketdata/storage Store
//go:generate mockgen -destination=./mock_data_source.go -package=mocks github.com/rxtech-lab/argo-data/pkg/marketdata/download DataSource
//go:generate mockgen -destination=./mock_deriver.go -package=mocks github.com/rxtech-lab/argo-data/pkg/marketdata/download Deriver
