// Package ascii provides ASCII art logos for the supported operating systems
// and picks one from a free-text OS name.
package ascii

// ANSI color codes used as logo accent colors
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
)

// Logo is a named block of art lines with a declared column width and an
// accent color. Lines are plain text; color is applied by the renderer.
type Logo struct {
	Name  string
	Width int
	Color string
	Lines []string
}

var (
	logoLinux = Logo{
		Name:  "linux",
		Width: 11,
		Color: ColorYellow,
		Lines: []string{
			`    .--.`,
			`   |o_o |`,
			`   |:_/ |`,
			`  //   \ \`,
			` (|     | )`,
			`/'\_   _/'\`,
			`\___)=(___/`,
		},
	}

	logoMacOS = Logo{
		Name:  "macos",
		Width: 30,
		Color: ColorGreen,
		Lines: []string{
			`                 ,xNMM.`,
			`               .OMMMMo`,
			`               OMMM0,`,
			`     .;loddo:' loolloddol;.`,
			`   cKMMMMMMMMMMNWMMMMMMMMMM0:`,
			` .KMMMMMMMMMMMMMMMMMMMMMMMWd.`,
			` XMMMMMMMMMMMMMMMMMMMMMMMX.`,
			`;MMMMMMMMMMMMMMMMMMMMMMMM:`,
			`:MMMMMMMMMMMMMMMMMMMMMMMM:`,
			`.MMMMMMMMMMMMMMMMMMMMMMMMX.`,
			` kMMMMMMMMMMMMMMMMMMMMMMMMWd.`,
			` .XMMMMMMMMMMMMMMMMMMMMMMMMMMk`,
			`  .XMMMMMMMMMMMMMMMMMMMMMMMMK.`,
			`    kMMMMMMMMMMMMMMMMMMMMMMd`,
			`     ;KMMMMMMMWXXWMMMMMMMk.`,
			`       .cooc,.    .,coo:.`,
		},
	}

	logoUbuntu = Logo{
		Name:  "ubuntu",
		Width: 40,
		Color: ColorRed,
		Lines: []string{
			`            .-/+oossssoo+/-.`,
			`        ':+ssssssssssssssssss+:'`,
			`      -+ssssssssssssssssssyyssss+-`,
			`    .ossssssssssssssssssdMMMNysssso.`,
			`   /ssssssssssshdmmNNmmyNMMMMhssssss/`,
			`  +ssssssssshmydMMMMMMMNddddyssssssss+`,
			` /sssssssshNMMMyhhyyyyhmNMMMNhssssssss/`,
			`.ssssssssdMMMNhsssssssssshNMMMdssssssss.`,
			`+sssshhhyNMMNyssssssssssssyNMMMysssssss+`,
			`ossyNMMMNyMMhsssssssssssssshmmmhssssssso`,
			`+sssshhhyNMMNyssssssssssssyNMMMysssssss+`,
			`.ssssssssdMMMNhsssssssssshNMMMdssssssss.`,
			` /sssssssshNMMMyhhyyyyhdNMMMNhssssssss/`,
			`  +sssssssssdmydMMMMMMMMddddyssssssss+`,
			`   /ssssssssssshdmNNNNmyNMMMMhssssss/`,
			`    .ossssssssssssssssssdMMMNysssso.`,
			`      -+sssssssssssssssssyyyssss+-`,
			`        ':+ssssssssssssssssss+:'`,
			`            .-/+oossssoo+/-.`,
		},
	}

	logoDebian = Logo{
		Name:  "debian",
		Width: 27,
		Color: ColorRed,
		Lines: []string{
			`       _,met$$$$$gg.`,
			`    ,g$$$$$$$$$$$$$$$P.`,
			`  ,g$$P"     """Y$$.".`,
			` ,$$P'              '$$$.`,
			`',$$P       ,ggs.     '$$b:`,
			"`d$$'     ,$P\"'   .    $$$",
			` $$P      d$'     ,    $$P`,
			` $$:      $$.   -    ,d$$'`,
			` $$;      Y$b._   _,d$P'`,
			` Y$$.    '.'"Y$$$$P"'`,
			" `$$b      \"-.__",
			"  `Y$$",
			"   `Y$$.",
			"     `$$b.",
			"       `Y$$b.",
			"          `\"Y$b._",
			"              `\"\"\"",
		},
	}

	logoArch = Logo{
		Name:  "arch",
		Width: 37,
		Color: ColorCyan,
		Lines: []string{
			`                  -'`,
			`                 .o+'`,
			`                'ooo/`,
			`               '+oooo:`,
			`              '+oooooo:`,
			`              -+oooooo+:`,
			`            '/:-:++oooo+:`,
			`           '/++++/+++++++:`,
			`          '/++++++++++++++:`,
			`         '/+++ooooooooooooo/'`,
			`        ./ooosssso++osssssso+'`,
			`       .oossssso-''''/ossssss+'`,
			`      -osssssso.      :ssssssso.`,
			`     :osssssss/        osssso+++.`,
			`    /ossssssss/        +ssssooo/-`,
			`  '/ossssso+/:-        -:/+osssso+-`,
			` '+sso+:-'                 '.-/+oso:`,
			`'++:.                           '-/+/`,
			".`                                 `/",
		},
	}

	logoManjaro = Logo{
		Name:  "manjaro",
		Width: 14,
		Color: ColorGreen,
		Lines: []string{
			`||||||||| ||||`,
			`||||||||| ||||`,
			`||||      ||||`,
			`|||| |||| ||||`,
			`|||| |||| ||||`,
			`|||| |||| ||||`,
			`|||| |||| ||||`,
		},
	}

	logoEndeavour = Logo{
		Name:  "endeavouros",
		Width: 24,
		Color: ColorPurple,
		Lines: []string{
			`          /o.`,
			`        :sssso-`,
			`      :ossssssso:`,
			`    /ssssssssssso+`,
			`  -+ssssssssssssssso+`,
			` //osssssssssssssssssso/`,
			`      /+ooooooooooooo+/`,
		},
	}

	logoFedora = Logo{
		Name:  "fedora",
		Width: 34,
		Color: ColorBlue,
		Lines: []string{
			`          /:-------------:\`,
			`       :-------------------::`,
			`     :-----------/shhOHbmp---:\`,
			`   /-----------omMMMNNNMMD  ---:`,
			`  :-----------sMMMMNMNMP.    ---:`,
			` :-----------:MMMdP-------    ---\`,
			`,------------:MMMd--------    ---:`,
			`:------------:MMMd-------    .---:`,
			`:----    oNMMMMMMMMMNho     .----:`,
			`:--     .+shhhMMMmhhy++   .------/`,
			`:-    -------:MMMd--------------:`,
			`:-   --------/MMMd-------------;`,
			`:-    ------/hMMMy------------:`,
			`:-- :dMNdhhdNMMNo------------;`,
			`:---:sdNMMMMNds:------------:`,
			`:------:://:-------------::`,
			`:---------------------://`,
		},
	}

	logoOpenSUSE = Logo{
		Name:  "opensuse",
		Width: 38,
		Color: ColorGreen,
		Lines: []string{
			`           .;ldkO0000Okdl;.`,
			`       .;d00xl:^''''''^:ok00d;.`,
			`     .d00l'                'o00d.`,
			`   .d0Kd'  Okxol:;,.          :O0d.`,
			`  .OKKKK0kOKKKKKKKKKKOxo:,      lKO.`,
			` ,0KKKKKKKKKKKKKKKK0P^,,,^dx:    ;00,`,
			`.OKKKKKKKKKKKKKKKKk'.oOPPb.'0k.   cKO.`,
			`:KKKKKKKKKKKKKKKKK: kKx..dd lKd   'OK:`,
			`dKKKKKKKKKKKOx0KKKd ^0KKKO' kKKc   dKd`,
			`dKKKKKKKKKKKK;.;oOKx,..^..;kKKK0.  dKd`,
			`:KKKKKKKKKKKK0o;...^cdxxOK0O/^^'  .0K:`,
			` kKKKKKKKKKKKKKKK0x;,,......,;od  lKk`,
			` '0KKKKKKKKKKKKKKKKKKKKK00KKOo^  c00'`,
			`  'kKKOxddxkOO00000Okxoc;''   .dKk'`,
			`    l0Ko.                    .c00l'`,
			`     'l0Kk:.              .;xK0l'`,
			`        'lkK0xl:;,,,,;:ldO0kl'`,
			`            '^:ldxkkkkxdl:^'`,
		},
	}

	logoSUSE = Logo{
		Name:  "suse",
		Width: 11,
		Color: ColorGreen,
		Lines: []string{
			`  _______`,
			`__|   __ \`,
			`     / .\ \`,
			`     \__/ |`,
			`   _______|`,
			`   \_______`,
			`__________/`,
		},
	}

	logoMint = Logo{
		Name:  "mint",
		Width: 36,
		Color: ColorGreen,
		Lines: []string{
			` MMMMMMMMMMMMMMMMMMMMMMMMMmds+.`,
			` MMm----::-://////////////oymNMd+'`,
			` MMd      /++                -sNMd:`,
			` MMNso/'  dMM    '.::-. .-::.' .hMN:`,
			` ddddMMh  dMM   :hNMNMNhNMNMNh: 'NMm`,
			`     NMm  dMM  .NMN/-+MMM+-/NMN' dMM`,
			`     NMm  dMM  -MMm  'MMM   dMM. dMM`,
			`     NMm  dMM  -MMm  'MMM   dMM. dMM`,
			`     NMm  dMM  .mmd  'mmm   yMM. dMM`,
			`     NMm  dMM'  ..'   ...   ydm. dMM`,
			`     hMM- +MMd/-------...-:sdds  dMM`,
			`     -NMm- :hNMNNNmdddddddddy/'  dMM`,
			`      -dMNs-''-::::-------.''    dMM`,
			`       '/dMNmy+/:-------------:/yMMM`,
			`          ./ydNMMMMMMMMMMMMMMMMMMMMM`,
			`             .MMMMMMMMMMMMMMMMMMM`,
		},
	}

	logoPop = Logo{
		Name:  "pop",
		Width: 39,
		Color: ColorCyan,
		Lines: []string{
			`             /////////////`,
			`         /////////////////////`,
			`      ///////*767////////////////`,
			`    //////7676767676*//////////////`,
			`   /////76767//7676767//////////////`,
			`  /////767676///*76767///////////////`,
			` ///////767676///76767.///7676*///////`,
			`/////////767676//76767///767676////////`,
			`//////////76767676767////76767/////////`,
			`///////////76767676//////7676//////////`,
			`////////////,7676,///////767///////////`,
			`/////////////*7676///////76////////////`,
			`///////////////7676////////////////////`,
			` ///////////////7676///767////////////`,
			`  //////////////////////'////////////`,
			`   //////.7676767676767676767,//////`,
			`    /////767676767676767676767/////`,
			`      ///////////////////////////`,
			`         /////////////////////`,
			`             /////////////`,
		},
	}

	logoKali = Logo{
		Name:  "kali",
		Width: 48,
		Color: ColorBlue,
		Lines: []string{
			`..............`,
			`            ..,;:ccc,.`,
			`          ......''';lxO.`,
			`.....''''..........,:ld;`,
			`           .';;;:::;,,.x,`,
			`      ..'''.            0Xxoc:,.  ...`,
			`  ....                ,ONkc;,;cokOdc',.`,
			` .                   OMo           ':ddo.`,
			`                    dMc               :OO;`,
			`                    0M.                 .:o.`,
			`                    ;Wd`,
			`                     ;XO,`,
			`                       ,d0Odlc;,..`,
			`                           ..',;:cdOOd::,.`,
			`                                    .:d;.':;.`,
			`                                       'd,  .'`,
			`                                         ;l   ..`,
			`                                          .o`,
			`                                            c`,
			`                                            .'`,
			`                                             .`,
		},
	}

	logoGentoo = Logo{
		Name:  "gentoo",
		Width: 35,
		Color: ColorPurple,
		Lines: []string{
			`         -/oyddmdhs+:.`,
			`     -odNMMMMMMMMNNmhy+-'`,
			`   -yNMMMMMMMMMMMNNNmmdhy+-`,
			` 'omMMMMMMMMMMMMNmdmmmmddhhy/'`,
			` omMMMMMMMMMMMNhhyyyohmdddhhhdo'`,
			`.ydMMMMMMMMMMdhs++so/smdddhhhhdm+'`,
			` oyhdmNMMMMMMMNdyooydmddddhhhhyhNd.`,
			`  :oyhhdNNMMMMMMMNNNmmdddhhhhhyymMh`,
			`    .:+sydNMMMMMNNNmmmdddhhhhhhmMmy`,
			`       /mMMMMMMNNNmmmdddhhhhhmMNhs:`,
			`    'oNMMMMMMMNNNmmmddddhhdmMNhs+'`,
			`  'sNMMMMMMMMNNNmmmdddddmNMmhs/.`,
			` /NMMMMMMMMNNNNmmmdddmNMNdso:'`,
			`+MMMMMMMNNNNNmmmmdmNMNdso/-`,
			`yMMNNNNNNNmmmmmNNMmhs+/-'`,
			`/hMMNNNNNNNNMNdhs++/-'`,
			`'/ohdmmddhys+++/:.'`,
			`  '-//////:--.`,
		},
	}

	logoAlpine = Logo{
		Name:  "alpine",
		Width: 40,
		Color: ColorBlue,
		Lines: []string{
			`       .hddddddddddddddddddddddh.`,
			`      :dddddddddddddddddddddddddd:`,
			`     /dddddddddddddddddddddddddddd/`,
			`    +dddddddddddddddddddddddddddddd+`,
			`  'sdddddddddddddddddddddddddddddddds'`,
			` 'ydddddddddddd++hdddddddddddddddddddy'`,
			`.hddddddddddd+'  '+ddddh:-sdddddddddddh.`,
			`hdddddddddd+'      '+y:    .sddddddddddh`,
			`ddddddddh+'   '//'   '.'     -sddddddddd`,
			`ddddddh+'   '/hddh/'   ':s-    -sddddddd`,
			`ddddh+'   '/+/dddddh/'   '+s-    -sddddd`,
			`ddd+'   '/o' :dddddddh/'   'oy-    .yddd`,
			`hdddyo+ohddyosdddddddddho+oydddy++ohdddh`,
			`.hddddddddddddddddddddddddddddddddddddh.`,
			` 'yddddddddddddddddddddddddddddddddddy'`,
			`  'sdddddddddddddddddddddddddddddddds'`,
			`    +dddddddddddddddddddddddddddddd+`,
			`     /dddddddddddddddddddddddddddd/`,
			`      :dddddddddddddddddddddddddd:`,
			`       .hddddddddddddddddddddddh.`,
		},
	}

	logoNixOS = Logo{
		Name:  "nixos",
		Width: 43,
		Color: ColorBlue,
		Lines: []string{
			`          ::::.    ':::::     ::::'`,
			`          ':::::    ':::::.  ::::'`,
			`            :::::     '::::.:::::`,
			`      .......:::::..... ::::::::`,
			`     ::::::::::::::::::. ::::::    ::::.`,
			`    ::::::::::::::::::::: :::::.  .::::'`,
			`           .....           ::::' :::::'`,
			`          :::::            '::' :::::'`,
			` ........:::::               ' :::::::::::.`,
			`:::::::::::::                 :::::::::::::`,
			` ::::::::::: ..              :::::`,
			`     .::::: .:::            :::::`,
			`    .:::::  :::::          '''''    .....`,
			`    :::::   ':::::.  ......:::::::::::::'`,
			`     :::     ::::::. ':::::::::::::::::'`,
			`            .:::::::: '::::::::::`,
			`           .::::''::::.     '::::.`,
			`          .::::'   ::::.     '::::.`,
			`         .::::      ::::      '::::.`,
		},
	}

	logoCentOS = Logo{
		Name:  "centos",
		Width: 36,
		Color: ColorYellow,
		Lines: []string{
			`                 ..`,
			`               .PLTJ.`,
			`              <><><><>`,
			`     KKSSV' 4KKK LJ KKKL.'VSSKK`,
			`     KKV' 4KKKKK LJ KKKKAL 'VKK`,
			`     V' ' 'VKKKK LJ KKKKV' ' 'V`,
			`     .4MA.' 'VKK LJ KKV' '.4Mb.`,
			`   . KKKKKA.' 'V LJ V' '.4KKKKK .`,
			` .4D KKKKKKKA.'' LJ ''.4KKKKKKK FA.`,
			`<QDD ++++++++++++  ++++++++++++ GFD>`,
			` 'VD KKKKKKKK'.. LJ ..'KKKKKKKK FV`,
			`   ' VKKKKK'. .4 LJ K. .'KKKKKV '`,
			`      'VK'. .4KK LJ KKA. .'KV'`,
			`     A. . .4KKKK LJ KKKKA. . .4`,
			`     KKA. 'KKKKK LJ KKKKK' .4KK`,
			`     KKSSA. VKKK LJ KKKV .4SSKK`,
			`              <><><><>`,
			`               'MKKM'`,
			`                 ''`,
		},
	}

	logoRedHat = Logo{
		Name:  "redhat",
		Width: 40,
		Color: ColorRed,
		Lines: []string{
			`           .MMM..:MMMMMMM`,
			`          MMMMMMMMMMMMMMMMMM`,
			`          MMMMMMMMMMMMMMMMMMMM.`,
			`         MMMMMMMMMMMMMMMMMMMMMM`,
			`        ,MMMMMMMMMMMMMMMMMMMMMM:`,
			`        MMMMMMMMMMMMMMMMMMMMMMMM`,
			`  .MMMM'  MMMMMMMMMMMMMMMMMMMMMM`,
			` MMMMMM    'MMMMMMMMMMMMMMMMMMMM.`,
			`MMMMMMMM      MMMMMMMMMMMMMMMMMM .`,
			`MMMMMMMMM.       'MMMMMMMMMMMMM' MM.`,
			`MMMMMMMMMMM.                     MMMM`,
			`'MMMMMMMMMMMMM.                 ,MMMMM.`,
			` 'MMMMMMMMMMMMMMMMM.          ,MMMMMMMM.`,
			`    MMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMM`,
			`      MMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMM:`,
			`         MMMMMMMMMMMMMMMMMMMMMMMMMMMMMM`,
			`            'MMMMMMMMMMMMMMMMMMMMMMMM:`,
			`                ''MMMMMMMMMMMMMMMMM'`,
		},
	}
)
