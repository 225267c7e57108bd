package domain

type Table string

const (
	TableAuctions       Table = "auctions"
	TableAuctionConfigs Table = "auction_configs"
	TableParams         Table = "params"
	TableBalances       Table = "balances"
	TableItems          Table = "items"
	TableAllowList      Table = "allow_list"
	TableVaultTransfers Table = "vault_transfers"
	TableSettlements    Table = "settlements"
	TableActivities     Table = "activities"
)
