package logging

const (
	// FieldError can be used instead of Err(err) if you have only the error message string.
	FieldError = "err"

	FieldComponent = "component"
	FieldChainId   = "chainId"

	FieldDuration = "duration"
	FieldUrl      = "url"
	FieldEndpoint = "endpoint"

	FieldRequestId  = "requestId"
	FieldHttpMethod = "httpMethod"
	FieldHttpStatus = "httpStatus"
	FieldHttpSize   = "httpSize"
	FieldRemoteAddr = "remoteAddr"

	FieldRpcMethod = "rpcMethod"

	FieldContractAddress = "contractAddress"
	FieldContractMethod  = "contractMethod"
	FieldRevertReason    = "revertReason"

	FieldTxHash      = "txHash"
	FieldTxFrom      = "txFrom"
	FieldTxGas       = "txGas"
	FieldBlockHash   = "blockHash"
	FieldBlockNumber = "blockNumber"

	FieldAccountName = "accountName"
	FieldAmount      = "amount"
)
