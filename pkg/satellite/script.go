package satellite

// trustedExternalScript is installed as the `satellite` trusted external
// command. The puppetserver invokes it with the agent certname as the only
// argument and merges the JSON it prints into trusted.external.satellite.
const trustedExternalScript = `#!/usr/bin/env bash
# Fetch trusted external data for a certname from the Satellite host facts
# API, using the connection settings of the satellite report processor.
set -euo pipefail

certname="$1"
config=/etc/puppetlabs/puppet/satellite_pe_tools.yaml

url=$(awk '$1 == "url:" {print $2}' "$config")
ssl_cert=$(awk '$1 == "ssl_cert:" {print $2}' "$config")
ssl_key=$(awk '$1 == "ssl_key:" {print $2}' "$config")

exec curl --silent --show-error --fail \
  --cert "$ssl_cert" --key "$ssl_key" --insecure \
  "${url}/api/v2/hosts/${certname}"
`
