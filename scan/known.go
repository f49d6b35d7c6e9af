package scan

// Common TCP services, names as registered at
// https://www.iana.org/assignments/service-names-port-numbers/service-names-port-numbers.csv
// Run go generate to replace this with the full registry.
var knownPorts = map[uint16]string{
	7:     "echo",
	20:    "ftp-data",
	21:    "ftp",
	22:    "ssh",
	23:    "telnet",
	25:    "smtp",
	53:    "domain",
	69:    "tftp",
	79:    "finger",
	80:    "http",
	88:    "kerberos",
	110:   "pop3",
	111:   "sunrpc",
	119:   "nntp",
	123:   "ntp",
	135:   "epmap",
	139:   "netbios-ssn",
	143:   "imap",
	161:   "snmp",
	179:   "bgp",
	389:   "ldap",
	443:   "https",
	445:   "microsoft-ds",
	465:   "submissions",
	514:   "shell",
	515:   "printer",
	587:   "submission",
	631:   "ipp",
	636:   "ldaps",
	873:   "rsync",
	993:   "imaps",
	995:   "pop3s",
	1433:  "ms-sql-s",
	1521:  "ncube-lm",
	1723:  "pptp",
	2049:  "nfs",
	3306:  "mysql",
	3389:  "ms-wbt-server",
	5060:  "sip",
	5432:  "postgresql",
	5900:  "rfb",
	6379:  "redis",
	6443:  "sun-sr-https",
	8080:  "http-alt",
	8443:  "pcsync-https",
	9418:  "git",
	11211: "memcache",
	27017: "mongodb",
}
