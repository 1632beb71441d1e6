package commands

const (
	_etc = "/usr/local/etc/foldersheets"
	_var = "/usr/local/var/foldersheets"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
	DEFAULT_CONFIG      = _etc + "/foldersheets.yaml"

	browse = "open"
)
